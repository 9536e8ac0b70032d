package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "decimal limit",
			mutate:  func(c *Config) { c.Budget.MonthlyLimit = "2500.75" },
			wantErr: false,
		},
		{
			name:    "upper case level",
			mutate:  func(c *Config) { c.Log.Level = "DEBUG" },
			wantErr: false,
		},
		{
			name:        "non numeric limit",
			mutate:      func(c *Config) { c.Budget.MonthlyLimit = "lots" },
			wantErr:     true,
			errorString: "invalid budget.monthly_limit 'lots': must be a number",
		},
		{
			name:        "negative limit",
			mutate:      func(c *Config) { c.Budget.MonthlyLimit = "-1" },
			wantErr:     true,
			errorString: "invalid budget.monthly_limit '-1': can't be negative",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "empty backup path",
			mutate:      func(c *Config) { c.Backup.TextPath = " " },
			wantErr:     true,
			errorString: "backup.text_path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_InitialMonthlyLimit(t *testing.T) {
	cfg := NewDefault()
	cfg.Budget.MonthlyLimit = ""
	got, err := cfg.InitialMonthlyLimit()
	if err != nil || !got.IsZero() {
		t.Fatalf("empty limit = %s, %v; want 0", got, err)
	}

	cfg.Budget.MonthlyLimit = " 5000 "
	got, err = cfg.InitialMonthlyLimit()
	if err != nil || !got.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("limit = %s, %v; want 5000", got, err)
	}
}
