package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if strings.ContainsAny(cfg.DefaultExtension, `/\. `) {
		add("default_extension", fmt.Sprintf("invalid extension %q", cfg.DefaultExtension))
	}
	if cfg.Indent < 1 || cfg.Indent > 8 {
		add("indent", fmt.Sprintf("must be between 1 and 8, got %d", cfg.Indent))
	}
	switch cfg.UI {
	case "auto", "color", "plain":
	default:
		add("ui", fmt.Sprintf("invalid mode %q (expected auto|color|plain)", cfg.UI))
	}
	if cfg.Log.MaxSizeMB < 0 {
		add("log.max_size_mb", "must not be negative")
	}
	if cfg.Log.MaxBackups < 0 {
		add("log.max_backups", "must not be negative")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
