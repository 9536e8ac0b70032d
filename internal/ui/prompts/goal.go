package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/validation"
)

type GoalAnswers struct {
	Name     string
	Target   string
	Deadline string
}

// PromptSavingGoal asks for the fields that were not passed as flags.
func PromptSavingGoal(prefill GoalAnswers) (GoalAnswers, error) {
	answers := prefill
	var fields []huh.Field

	if answers.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Goal name:").
			Value(&answers.Name).
			Validate(validation.ValidateGoalName))
	}
	if answers.Target == "" {
		fields = append(fields, huh.NewInput().
			Title("Target amount:").
			Value(&answers.Target).
			Validate(validation.ValidatePositiveAmount))
	}
	if answers.Deadline == "" {
		fields = append(fields, huh.NewInput().
			Title("Deadline (YYYY-MM-DD):").
			Value(&answers.Deadline).
			Validate(validation.ValidateDate))
	}

	if len(fields) == 0 {
		return answers, nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return GoalAnswers{}, err
	}

	answers.Name = strings.TrimSpace(answers.Name)
	return answers, nil
}
