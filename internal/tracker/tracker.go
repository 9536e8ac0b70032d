// Package tracker holds the in-memory finance state: transactions, the monthly budget and
// saving goals, together with the snapshot formats used to back it up.
package tracker

import (
	"io"
	"os"

	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

type FinanceTracker struct {
	transactions []*model.Transaction
	budget       model.Budget
	savingGoals  []*model.SavingGoal

	out io.Writer
}

type Option func(*FinanceTracker)

// WithOutput sets where the View* and not-found messages are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(ft *FinanceTracker) {
		ft.out = w
	}
}

func New(monthlyLimit decimal.Decimal, opts ...Option) *FinanceTracker {
	ft := &FinanceTracker{
		budget: model.NewBudget(monthlyLimit),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(ft)
	}
	return ft
}

// AddTransaction builds an Income or Expense and appends it.
func (ft *FinanceTracker) AddTransaction(kind model.Kind, category string, amount decimal.Decimal, date string, receiptPath string) (*model.Transaction, error) {
	tx, err := model.NewTransaction(kind, category, amount, date, receiptPath)
	if err != nil {
		return nil, err
	}
	ft.transactions = append(ft.transactions, tx)
	return tx, nil
}

// Append adds a transaction that was built elsewhere.
func (ft *FinanceTracker) Append(tx *model.Transaction) {
	ft.transactions = append(ft.transactions, tx)
}

// Transactions returns the transactions in insertion order.
func (ft *FinanceTracker) Transactions() []*model.Transaction {
	out := make([]*model.Transaction, len(ft.transactions))
	copy(out, ft.transactions)
	return out
}

func (ft *FinanceTracker) Budget() model.Budget {
	return ft.budget
}

func (ft *FinanceTracker) SetMonthlyLimit(limit decimal.Decimal) {
	ft.budget.MonthlyLimit = limit
}

func (ft *FinanceTracker) RemainingBudget() decimal.Decimal {
	return ft.budget.Remaining(ft.transactions)
}

func (ft *FinanceTracker) TotalIncome() decimal.Decimal {
	return ft.sum(model.KindIncome)
}

func (ft *FinanceTracker) TotalExpense() decimal.Decimal {
	return ft.sum(model.KindExpense)
}

func (ft *FinanceTracker) sum(kind model.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ft.transactions {
		if t.Kind() == kind {
			total = total.Add(t.Amount())
		}
	}
	return total
}

// Recommendations lists the warnings that currently apply. Both checks are independent.
func (ft *FinanceTracker) Recommendations() []string {
	var recs []string
	if ft.TotalIncome().LessThan(ft.TotalExpense()) {
		recs = append(recs, RecommendationExpensesOverIncome)
	}
	if ft.RemainingBudget().IsNegative() {
		recs = append(recs, RecommendationBudgetExceeded)
	}
	return recs
}

func (ft *FinanceTracker) AddSavingGoal(name string, target decimal.Decimal, deadline string) (*model.SavingGoal, error) {
	goal, err := model.NewSavingGoal(name, target, deadline)
	if err != nil {
		return nil, err
	}
	ft.savingGoals = append(ft.savingGoals, goal)
	return goal, nil
}

// AppendSavingGoal adds a goal that was built elsewhere, keeping its saved amount.
func (ft *FinanceTracker) AppendSavingGoal(goal *model.SavingGoal) {
	ft.savingGoals = append(ft.savingGoals, goal)
}

func (ft *FinanceTracker) SavingGoals() []*model.SavingGoal {
	out := make([]*model.SavingGoal, len(ft.savingGoals))
	copy(out, ft.savingGoals)
	return out
}

// FindSavingGoal returns the first goal with the given name.
func (ft *FinanceTracker) FindSavingGoal(name string) (*model.SavingGoal, bool) {
	for _, goal := range ft.savingGoals {
		if goal.Name() == name {
			return goal, true
		}
	}
	return nil, false
}

// AddToSavingGoal credits amount to the first goal named name. An unknown name is reported
// on the output and nothing changes.
func (ft *FinanceTracker) AddToSavingGoal(name string, amount decimal.Decimal) bool {
	goal, ok := ft.FindSavingGoal(name)
	if !ok {
		ft.reportGoalNotFound(name)
		return false
	}
	goal.AddSavings(amount)
	return true
}
