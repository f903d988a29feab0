package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name searched for by FindConfigPath.
const ConfigFileName = ".quizgen.yml"

// FindConfigPath walks from startDir (or the working directory) to the
// filesystem root and returns the first config file found, or "" when none.
func FindConfigPath(startDir string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		path, found, err := configIn(dir)
		if err != nil || found {
			return path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// configIn checks a single directory for ConfigFileName.
func configIn(dir string) (string, bool, error) {
	path := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("stat config path %q: %w", path, err)
	case info.IsDir():
		return "", false, fmt.Errorf("config path %q is a directory", path)
	}
	return path, true, nil
}
