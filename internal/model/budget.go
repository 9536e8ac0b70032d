package model

import "github.com/shopspring/decimal"

// Budget is a flat monthly spending limit.
type Budget struct {
	MonthlyLimit decimal.Decimal
}

func NewBudget(limit decimal.Decimal) Budget {
	return Budget{MonthlyLimit: limit}
}

// Remaining subtracts every expense from the limit. Income is ignored and the result
// may be negative.
func (b Budget) Remaining(transactions []*Transaction) decimal.Decimal {
	remaining := b.MonthlyLimit
	for _, t := range transactions {
		if t.IsExpense() {
			remaining = remaining.Sub(t.amount)
		}
	}
	return remaining
}
