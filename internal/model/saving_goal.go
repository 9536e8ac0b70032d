package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SavingGoal struct {
	name     string
	target   decimal.Decimal
	deadline time.Time
	saved    decimal.Decimal
}

func NewSavingGoal(name string, target decimal.Decimal, deadline string) (*SavingGoal, error) {
	d, err := ParseDate(deadline)
	if err != nil {
		return nil, err
	}
	return RestoreSavingGoal(name, target, d, decimal.Zero), nil
}

func RestoreSavingGoal(name string, target decimal.Decimal, deadline time.Time, saved decimal.Decimal) *SavingGoal {
	return &SavingGoal{
		name:     name,
		target:   target,
		deadline: truncateDate(deadline),
		saved:    saved,
	}
}

func (g *SavingGoal) Name() string                 { return g.name }
func (g *SavingGoal) Target() decimal.Decimal      { return g.target }
func (g *SavingGoal) Deadline() time.Time          { return g.deadline }
func (g *SavingGoal) SavedAmount() decimal.Decimal { return g.saved }

// AddSavings adds amount to the saved total without any checks.
func (g *SavingGoal) AddSavings(amount decimal.Decimal) {
	g.saved = g.saved.Add(amount)
}

func (g *SavingGoal) AmountRemaining() decimal.Decimal {
	return g.target.Sub(g.saved)
}

// Progress is the saved share of the target in percent.
func (g *SavingGoal) Progress() decimal.Decimal {
	if g.target.IsZero() {
		return decimal.Zero
	}
	return g.saved.Div(g.target).Mul(decimal.NewFromInt(100)).Round(1)
}

func (g *SavingGoal) Display() string {
	return fmt.Sprintf("%s - Goal: $%s, Saved: $%s, Remaining: $%s, Deadline: %s",
		g.name, g.target, g.saved, g.AmountRemaining(), FormatDate(g.deadline))
}
