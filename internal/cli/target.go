package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgen/internal/prompt"
	"quizgen/internal/quiz"
	"quizgen/internal/ui"
)

// target is the quiz file a session edits.
type target struct {
	path   string
	create bool
}

// resolveTarget picks the file from the arguments, or asks for a new one.
func resolveTarget(args []string, p *prompt.Prompter, view *ui.Renderer, extension string) (target, error) {
	if len(args) == 0 {
		view.Notice("Generating new Quiz...")
		view.Line("Please specify a filename")
		path, err := promptFilename(p, view, "New Filename: ", extension)
		if err != nil {
			return target{}, err
		}
		return target{path: path, create: true}, nil
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return target{}, fmt.Errorf("resolve quiz path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return target{path: path}, nil
	} else if !os.IsNotExist(err) {
		return target{}, fmt.Errorf("stat quiz file: %w", err)
	}
	return target{path: path, create: true}, nil
}

// openTarget loads an existing quiz and prints its summary, or starts an empty one.
func openTarget(t target, view *ui.Renderer) (quiz.Quiz, error) {
	if t.create {
		view.Notice("Generating new File: %q ...", t.path)
		view.Blank()
		return quiz.New(), nil
	}
	view.Notice("Loading File: %q ...", t.path)
	q, err := quiz.Load(t.path)
	if err != nil {
		return quiz.Quiz{}, err
	}
	view.Blank()
	view.Summary(q, t.path, false)
	view.Blank()
	return q, nil
}

// promptFilename asks for a new quiz path, appending the default extension
// when the name has none and confirming before an existing file is replaced.
func promptFilename(p *prompt.Prompter, view *ui.Renderer, label, extension string) (string, error) {
	for {
		name, err := p.String(label)
		if err != nil {
			return "", err
		}
		path, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("resolve quiz path: %w", err)
		}
		if extension != "" && filepath.Ext(path) == "" {
			path += "." + extension
		}
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat quiz file: %w", err)
		}
		if info.IsDir() {
			view.Line("%q is a directory.", path)
			continue
		}
		view.Line("File %q already exists.", path)
		overwrite, err := p.YesNo("Override?", false)
		if err != nil {
			return "", err
		}
		if overwrite {
			view.Warn("Warning: Overriding existing file!")
			return path, nil
		}
	}
}
