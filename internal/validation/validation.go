package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
)

// ValidateName checks a category or goal name. Names must fit on one line of a text
// snapshot, so the field separator is rejected.
func ValidateName(label string) func(string) error {
	return func(name string) error {
		name = strings.TrimSpace(name)

		if name == "" {
			return fmt.Errorf("%s can't be empty", label)
		}

		if strings.Contains(name, "|") {
			return fmt.Errorf("%s cannot contain '|' character", label)
		}

		if strings.ContainsAny(name, "\r\n") {
			return fmt.Errorf("%s must be a single line", label)
		}

		if len(name) > constants.MaxNameLen {
			return fmt.Errorf("%s too long (max %d characters)", label, constants.MaxNameLen)
		}
		return nil
	}
}

var (
	ValidateCategory = ValidateName("category")
	ValidateGoalName = ValidateName("goal name")
)

func ValidateAmount(input string) error {
	_, err := utils.ParseAmount(input)
	return err
}

// ValidatePositiveAmount rejects zero on top of ValidateAmount.
func ValidatePositiveAmount(input string) error {
	d, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

func ValidateDate(input string) error {
	if _, err := model.ParseDate(input); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return nil
}

func ValidateKind(input string) error {
	_, err := model.ParseKind(input)
	return err
}
