package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/taroutcy/claudemd-landing/internal/config"
	"github.com/taroutcy/claudemd-landing/internal/landing"
	"github.com/taroutcy/claudemd-landing/internal/logger"
)

// loadConfig loads and validates the config, then installs the logger it
// asks for.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := logger.ParseLevel(string(cfg.LogLevel))
	if verbose {
		level = slog.LevelDebug
	}
	logger.Setup(level, os.Stderr)

	return cfg, nil
}

// buildPage renders the landing page and writes it to path.
func buildPage(path string) error {
	doc, err := landing.Generate()
	if err != nil {
		return err
	}
	slog.Debug("writing landing page", "path", path, "bytes", len(doc))
	return landing.Write(doc, path)
}
