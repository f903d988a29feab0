package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
)

// resolveConfig loads the config and applies flag overrides.
func resolveConfig(opts options) (config.Config, error) {
	path := strings.TrimSpace(opts.configPath)
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = abs
	}
	cfg, _, err := config.Resolve(path)
	if err != nil {
		return config.Config{}, err
	}
	if mode := strings.TrimSpace(opts.uiMode); mode != "" {
		cfg.UI = strings.ToLower(mode)
	}
	if logPath := strings.TrimSpace(opts.logPath); logPath != "" {
		cfg.Log.Path = logPath
	}
	return cfg, nil
}
