package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode values accepted by ResolveMode.
const (
	ModeAuto  = "auto"
	ModeColor = "color"
	ModePlain = "plain"
)

// ModeDecision captures whether output is styled and whether the terminal is interactive.
type ModeDecision struct {
	Color    bool
	Terminal bool
	Warning  string
}

// IsTerminal reports whether a writer is a TTY.
var IsTerminal = defaultIsTerminal

// ResolveMode determines how output is rendered for a writer.
func ResolveMode(mode string, stdout io.Writer) (ModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = ModeAuto
	}
	tty := IsTerminal(stdout)
	switch normalized {
	case ModeAuto:
		return ModeDecision{Color: tty, Terminal: tty}, nil
	case ModeColor:
		if tty {
			return ModeDecision{Color: true, Terminal: true}, nil
		}
		return ModeDecision{
			Color:   false,
			Warning: "Color output requested but stdout is not a TTY; falling back to plain output.",
		}, nil
	case ModePlain:
		return ModeDecision{Color: false, Terminal: tty}, nil
	default:
		return ModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|color|plain)", mode)
	}
}

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
