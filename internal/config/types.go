package config

// LogLevel names a slog level in configuration files.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level generator configuration, corresponding to .landing.yml.
type Config struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	FileName  string   `yaml:"file_name" koanf:"file_name"`
	LogLevel  LogLevel `yaml:"log_level" koanf:"log_level"`
}
