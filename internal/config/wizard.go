package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the output layout and saves the result to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Configure the landing page build.")
	fmt.Println()

	def := DefaultConfig()

	// 1. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory",
		Default: def.OutputDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 2. File name.
	namePrompt := promptui.Prompt{
		Label:   "Page file name",
		Default: def.FileName,
		Validate: func(s string) error {
			return (&Config{OutputDir: "x", FileName: strings.TrimSpace(s)}).Validate()
		},
	}
	fileName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("file name: %w", err)
	}

	// 3. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []LogLevel{LogInfo, LogDebug, LogWarn, LogError},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := &Config{
		OutputDir: strings.TrimSpace(outputDir),
		FileName:  strings.TrimSpace(fileName),
		LogLevel:  LogLevel(level),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
