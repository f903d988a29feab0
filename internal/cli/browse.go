package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"quizgen/internal/quiz"
	"quizgen/internal/ui"
)

// runBrowser is a test seam for the interactive browser.
var runBrowser = ui.RunBrowser

// runBrowse shows a quiz read-only. Without a terminal it prints the complete list.
func runBrowse(args []string, decision ui.ModeDecision, view *ui.Renderer, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "--browse requires a quiz file")
		return ExitError
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: resolve quiz path: %v\n", err)
		return ExitError
	}
	q, err := quiz.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	if !decision.Terminal {
		view.Summary(q, path, true)
		return ExitOK
	}
	if err := runBrowser(q, filepath.Base(path), decision.Color, sessionInput, stdout); err != nil {
		fmt.Fprintf(stderr, "Browser failed: %v\n", err)
		return ExitError
	}
	return ExitOK
}
