package config

import "strings"

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.DefaultExtension = strings.TrimPrefix(strings.TrimSpace(cfg.DefaultExtension), ".")
	if cfg.DefaultExtension == "" {
		cfg.DefaultExtension = DefaultExtension
	}
	if cfg.Indent == 0 {
		cfg.Indent = DefaultIndent
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = DefaultUI
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultMaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = DefaultMaxBackups
	}
}
