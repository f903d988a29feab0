package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
)

// runInitConfig writes a default config to --config or the working directory.
func runInitConfig(opts options, stdout, stderr io.Writer) int {
	if len(opts.args) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(opts.args, " "))
		printUsage(stderr)
		return ExitError
	}
	target := strings.TrimSpace(opts.configPath)
	if target == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		target = filepath.Join(wd, config.ConfigFileName)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	if err := config.Scaffold(absTarget); err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Wrote %s\n", absTarget)
	return ExitOK
}
