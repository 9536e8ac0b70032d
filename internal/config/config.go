package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Budget     BudgetConfig   `mapstructure:"budget"`
	Backup     BackupConfig   `mapstructure:"backup"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// BudgetConfig.MonthlyLimit only seeds a fresh database; after that the stored limit wins.
type BudgetConfig struct {
	MonthlyLimit string `mapstructure:"monthly_limit"`
}

type BackupConfig struct {
	BinaryPath string `mapstructure:"binary_path"`
	TextPath   string `mapstructure:"text_path"`
	YAMLPath   string `mapstructure:"yaml_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var LogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Budget:   BudgetConfig{MonthlyLimit: "0"},
		Backup: BackupConfig{
			BinaryPath: "backup.bin",
			TextPath:   "backup.txt",
			YAMLPath:   "backup.yaml",
		},
		Log: LogConfig{Level: "disabled"},
	}
}

// InitialMonthlyLimit parses Budget.MonthlyLimit.
func (c *Config) InitialMonthlyLimit() (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Budget.MonthlyLimit)
	if raw == "" {
		return decimal.Zero, nil
	}
	limit, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid budget.monthly_limit '%s': must be a number", c.Budget.MonthlyLimit)
	}
	if limit.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid budget.monthly_limit '%s': can't be negative", c.Budget.MonthlyLimit)
	}
	return limit, nil
}

// Validate collects every problem into one error.
func (c *Config) Validate() error {
	var errors []string

	if _, err := c.InitialMonthlyLimit(); err != nil {
		errors = append(errors, err.Error())
	}

	validLevel := false
	for _, lvl := range LogLevels {
		if strings.EqualFold(c.Log.Level, lvl) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.Log.Level, LogLevels))
	}

	if strings.TrimSpace(c.Backup.BinaryPath) == "" {
		errors = append(errors, "backup.binary_path cannot be empty")
	}
	if strings.TrimSpace(c.Backup.TextPath) == "" {
		errors = append(errors, "backup.text_path cannot be empty")
	}
	if strings.TrimSpace(c.Backup.YAMLPath) == "" {
		errors = append(errors, "backup.yaml_path cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}
