package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"quizgen/internal/config"
	"quizgen/internal/editor"
	"quizgen/internal/logging"
	"quizgen/internal/prompt"
	"quizgen/internal/ui"
)

const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 2
)

var usageLines = []string{
	"quizgen [options]            create a new quiz, asking for a filename",
	"quizgen [options] <file>     edit <file>, creating it when missing",
	"quizgen --browse <file>      browse <file> read-only",
	"quizgen --init-config        write a default " + config.ConfigFileName,
}

// sessionInput allows tests to override stdin for prompts.
var sessionInput io.Reader = os.Stdin

// options holds parsed command line flags.
type options struct {
	configPath string
	uiMode     string
	logPath    string
	browse     bool
	initConfig bool
	args       []string
}

// Run executes quizgen and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printUsage(stdout)
		return ExitOK
	}
	opts, err := parseOptions(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printUsage(stderr)
		return ExitError
	}
	if opts.initConfig {
		return runInitConfig(opts, stdout, stderr)
	}
	if len(opts.args) > 1 {
		fmt.Fprintln(stderr, "Too many arguments")
		printUsage(stderr)
		return ExitError
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return ExitError
	}
	decision, err := ui.ResolveMode(cfg.UI, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid ui mode: %v\n", err)
		return ExitError
	}
	if decision.Warning != "" {
		fmt.Fprintln(stderr, decision.Warning)
	}
	logger, err := logging.New(logging.Options{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Debug:      cfg.Log.Debug,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return ExitError
	}
	defer func() { _ = logger.Sync() }()

	view := ui.NewRenderer(stdout, decision.Color)
	if opts.browse {
		return runBrowse(opts.args, decision, view, stdout, stderr)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()
	return runEditor(ctx, opts.args, cfg, view, logger, stdout, stderr)
}

// runEditor resolves the target file and drives an edit session on it.
func runEditor(ctx context.Context, args []string, cfg config.Config, view *ui.Renderer, logger *zap.Logger, stdout, stderr io.Writer) int {
	prompter := prompt.New(ctx, sessionInput, stdout)
	view.Banner()

	target, err := resolveTarget(args, prompter, view, cfg.DefaultExtension)
	if err != nil {
		return reportSessionError(err, stderr)
	}
	q, err := openTarget(target, view)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		logger.Error("load failed", zap.String("file", target.path), zap.Error(err))
		return ExitError
	}
	logger.Info("quiz opened", zap.String("file", target.path), zap.Bool("created", target.create), zap.Int("questions", len(q.Questions)))

	session := editor.NewSession(q, target.path, target.create, editor.Options{
		Prompter: prompter,
		Renderer: view,
		Store:    editor.FileStore{Indent: cfg.Indent},
		Logger:   logger,
	})
	if err := session.Run(); err != nil {
		return reportSessionError(err, stderr)
	}
	return ExitOK
}

// reportSessionError maps a session failure to its exit status.
func reportSessionError(err error, stderr io.Writer) int {
	switch {
	case errors.Is(err, prompt.ErrInterrupted):
		fmt.Fprintln(stderr, "CTRL-C: Interrupted by user")
		return ExitInterrupted
	case errors.Is(err, editor.ErrInputClosed):
		fmt.Fprintln(stderr, "Input closed; unsaved changes discarded.")
		return ExitError
	case errors.Is(err, prompt.ErrAborted):
		fmt.Fprintln(stderr, "Aborted: no file selected.")
		return ExitError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := flag.NewFlagSet("quizgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
	flags.StringVar(&opts.uiMode, "ui", "", "Output mode: auto|color|plain")
	flags.StringVar(&opts.logPath, "log", "", "Write a session audit log to a file")
	flags.BoolVar(&opts.browse, "browse", false, "Browse a quiz read-only and exit")
	flags.BoolVar(&opts.initConfig, "init-config", false, "Write a default config file and exit")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	opts.args = flags.Args()
	return opts, nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range usageLines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --config <path>   config file (default: search for "+config.ConfigFileName+")")
	fmt.Fprintln(w, "  --ui <mode>       auto|color|plain")
	fmt.Fprintln(w, "  --log <path>      write a session audit log")
	fmt.Fprintln(w, "\nExit status: 0 ok, 1 error, 2 interrupted.")
}
