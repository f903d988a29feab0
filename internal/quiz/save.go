package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultIndent is the number of spaces used when writing quiz files.
const DefaultIndent = 4

// Encode renders the quiz as indented JSON with a trailing newline.
// Keys follow struct order so output is stable across saves.
func Encode(q Quiz, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	// Clone also turns nil slices into empty arrays in the output.
	data, err := json.MarshalIndent(q.Clone(), "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	return append(data, '\n'), nil
}

// Save overwrites path with the encoded quiz.
func Save(path string, q Quiz, indent int) error {
	data, err := Encode(q, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}
