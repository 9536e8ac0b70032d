package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/validation"
)

// PromptInitMonthlyLimit asks for the monthly spending limit on first run.
func PromptInitMonthlyLimit(limitDefault string) (string, error) {
	var limit string

	err := huh.NewInput().
		Title("Welcome to fintrack! This is the first run, please set your monthly budget:").
		Description("Expenses are compared against this limit. Use 0 to skip budgeting.").
		Placeholder(limitDefault).
		Value(&limit).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return validation.ValidateAmount(s)
		}).
		Run()

	if err != nil {
		return "", err
	}

	limit = strings.TrimSpace(limit)
	if limit == "" {
		return limitDefault, nil
	}
	return limit, nil
}
