package service

import (
	"fmt"

	"github.com/hance08/fintrack/internal/utils"
	"github.com/shopspring/decimal"
)

type BudgetSummary struct {
	MonthlyLimit    decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalExpense    decimal.Decimal
	Remaining       decimal.Decimal
	Recommendations []string
}

func (fs *FinanceService) SetMonthlyLimit(amountStr string) (decimal.Decimal, error) {
	limit, err := utils.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero, err
	}

	if err := fs.repo.SetMonthlyLimit(limit); err != nil {
		return decimal.Zero, fmt.Errorf("failed to save monthly limit: %w", err)
	}
	fs.tracker.SetMonthlyLimit(limit)

	fs.log.Debug("set monthly limit", fs.log.Args("limit", limit.String()))
	return limit, nil
}

func (fs *FinanceService) BudgetSummary() BudgetSummary {
	return BudgetSummary{
		MonthlyLimit:    fs.tracker.Budget().MonthlyLimit,
		TotalIncome:     fs.tracker.TotalIncome(),
		TotalExpense:    fs.tracker.TotalExpense(),
		Remaining:       fs.tracker.RemainingBudget(),
		Recommendations: fs.tracker.Recommendations(),
	}
}
