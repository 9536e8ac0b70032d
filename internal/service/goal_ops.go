package service

import (
	"fmt"
	"strings"

	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/hance08/fintrack/internal/validation"
)

// AddSavingGoal creates a new goal. Unlike the tracker, the service refuses a second goal
// with the same name.
func (fs *FinanceService) AddSavingGoal(name, target, deadline string) (*model.SavingGoal, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateGoalName(name); err != nil {
		return nil, err
	}
	if _, exists := fs.tracker.FindSavingGoal(name); exists {
		return nil, fmt.Errorf("%w: '%s'", ErrGoalExists, name)
	}

	amount, err := utils.ParseAmount(target)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("goal target must be greater than zero")
	}

	goal, err := model.NewSavingGoal(name, amount, deadline)
	if err != nil {
		return nil, err
	}

	if _, err := fs.repo.CreateSavingGoal(goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	fs.tracker.AppendSavingGoal(goal)

	fs.log.Debug("added saving goal", fs.log.Args("name", name, "target", amount.String(), "deadline", deadline))
	return goal, nil
}

// AddToSavingGoal credits amount to the named goal. When no goal matches, the tracker
// reports it on the output and false is returned without an error. The new saved amount
// is stored before the in-memory goal changes.
func (fs *FinanceService) AddToSavingGoal(name, amountStr string) (bool, error) {
	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return false, err
	}

	goal, ok := fs.tracker.FindSavingGoal(name)
	if !ok {
		fs.tracker.AddToSavingGoal(name, amount)
		fs.log.Debug("saving goal not found", fs.log.Args("name", name))
		return false, nil
	}

	saved := goal.SavedAmount().Add(amount)
	if err := fs.repo.UpdateSavedAmount(name, saved); err != nil {
		return true, fmt.Errorf("failed to save goal progress: %w", err)
	}
	fs.tracker.AddToSavingGoal(name, amount)

	fs.log.Debug("added savings", fs.log.Args("name", name, "amount", amount.String(), "saved", saved.String()))
	return true, nil
}

func (fs *FinanceService) ListSavingGoals() []*model.SavingGoal {
	return fs.tracker.SavingGoals()
}
