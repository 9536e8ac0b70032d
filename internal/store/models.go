package store

import (
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

const settingMonthlyLimit = "monthly_limit"

type transactionRow struct {
	ID         int64
	Kind       string
	Category   string
	Amount     string
	Date       string
	HasReceipt bool
	Receipt    []byte
}

func (r transactionRow) toModel() (*model.Transaction, error) {
	kind, err := model.ParseKind(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: invalid amount %q: %w", r.ID, r.Amount, err)
	}
	date, err := model.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", r.ID, err)
	}

	var receipt *model.Receipt
	if r.HasReceipt {
		receipt = model.NewReceipt(r.Receipt)
	}
	return model.RestoreTransaction(kind, r.Category, amount, date, receipt)
}

type savingGoalRow struct {
	ID       int64
	Name     string
	Target   string
	Deadline string
	Saved    string
}

func (r savingGoalRow) toModel() (*model.SavingGoal, error) {
	target, err := decimal.NewFromString(r.Target)
	if err != nil {
		return nil, fmt.Errorf("saving goal %d: invalid target %q: %w", r.ID, r.Target, err)
	}
	saved, err := decimal.NewFromString(r.Saved)
	if err != nil {
		return nil, fmt.Errorf("saving goal %d: invalid saved amount %q: %w", r.ID, r.Saved, err)
	}
	deadline, err := model.ParseDate(r.Deadline)
	if err != nil {
		return nil, fmt.Errorf("saving goal %d: %w", r.ID, err)
	}
	return model.RestoreSavingGoal(r.Name, target, deadline, saved), nil
}
