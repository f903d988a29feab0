package config

// Config holds editor settings read from .quizgen.yml.
type Config struct {
	DefaultExtension string    `yaml:"default_extension"`
	Indent           int       `yaml:"indent"`
	UI               string    `yaml:"ui"`
	Log              LogConfig `yaml:"log"`
}

// LogConfig configures the optional session audit log.
type LogConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Debug      bool   `yaml:"debug"`
}

// Defaults used when the config file omits a value or is absent.
const (
	DefaultExtension  = "quiz"
	DefaultIndent     = 4
	DefaultUI         = "auto"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// Default returns the configuration used without a config file.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}
