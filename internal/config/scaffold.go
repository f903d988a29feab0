package config

import (
	"fmt"
	"os"
)

const defaultConfig = `# quizgen settings
default_extension: quiz
indent: 4
ui: auto
log:
  path: ""
  max_size_mb: 10
  max_backups: 3
  debug: false
`

// Scaffold writes a default config file, refusing to overwrite an existing one.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
