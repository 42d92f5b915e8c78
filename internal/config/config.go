package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Export  ExportConfig  `json:"export"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	WeightUnit string `json:"weight_unit"`
	LengthUnit string `json:"length_unit"`
}

// ExportConfig holds default paths for exports
type ExportConfig struct {
	CSVPath    string `json:"csv_path"`
	ReportPath string `json:"report_path"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			WeightUnit: "lbs",
			LengthUnit: "in",
		},
		Export: ExportConfig{
			CSVPath:    "workout-history.csv",
			ReportPath: "fitness-healthcare-report.txt",
		},
	}
}

// Load reads the configuration from ~/.retirestrong/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.WeightUnit == "" {
		cfg.Display.WeightUnit = defaults.Display.WeightUnit
	}
	if cfg.Display.LengthUnit == "" {
		cfg.Display.LengthUnit = defaults.Display.LengthUnit
	}
	if cfg.Export.CSVPath == "" {
		cfg.Export.CSVPath = defaults.Export.CSVPath
	}
	if cfg.Export.ReportPath == "" {
		cfg.Export.ReportPath = defaults.Export.ReportPath
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.retirestrong/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has valid values
func (c *Config) Validate() error {
	if c.Display.WeightUnit != "" && c.Display.WeightUnit != "lbs" && c.Display.WeightUnit != "kg" {
		return fmt.Errorf("display.weight_unit must be \"lbs\" or \"kg\", got %q", c.Display.WeightUnit)
	}
	if c.Display.LengthUnit != "" && c.Display.LengthUnit != "in" && c.Display.LengthUnit != "cm" {
		return fmt.Errorf("display.length_unit must be \"in\" or \"cm\", got %q", c.Display.LengthUnit)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".retirestrong", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".retirestrong"), nil
}
