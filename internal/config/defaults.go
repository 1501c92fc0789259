package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".landing.yml"

// DefaultConfig returns the fixed build layout: dist/index.html.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "dist",
		FileName:  "index.html",
		LogLevel:  LogInfo,
	}
}
