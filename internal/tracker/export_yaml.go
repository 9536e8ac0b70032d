package tracker

import (
	"fmt"
	"os"

	"github.com/hance08/fintrack/internal/model"
	"gopkg.in/yaml.v3"
)

type reportYAML struct {
	MonthlyLimit    string            `yaml:"monthly_limit"`
	RemainingBudget string            `yaml:"remaining_budget"`
	TotalIncome     string            `yaml:"total_income"`
	TotalExpense    string            `yaml:"total_expense"`
	Transactions    []transactionYAML `yaml:"transactions"`
	SavingGoals     []savingGoalYAML  `yaml:"saving_goals"`
	Recommendations []string          `yaml:"recommendations,omitempty"`
}

type transactionYAML struct {
	Kind       string `yaml:"kind"`
	Category   string `yaml:"category"`
	Amount     string `yaml:"amount"`
	Date       string `yaml:"date"`
	HasReceipt bool   `yaml:"has_receipt"`
}

type savingGoalYAML struct {
	Name      string `yaml:"name"`
	Target    string `yaml:"target"`
	Saved     string `yaml:"saved"`
	Remaining string `yaml:"remaining"`
	Deadline  string `yaml:"deadline"`
}

// EncodeYAML renders a read-only report of the tracker. It is not a restore format.
func (ft *FinanceTracker) EncodeYAML() ([]byte, error) {
	out := reportYAML{
		MonthlyLimit:    ft.budget.MonthlyLimit.StringFixed(2),
		RemainingBudget: ft.RemainingBudget().StringFixed(2),
		TotalIncome:     ft.TotalIncome().StringFixed(2),
		TotalExpense:    ft.TotalExpense().StringFixed(2),
		Transactions:    make([]transactionYAML, 0, len(ft.transactions)),
		SavingGoals:     make([]savingGoalYAML, 0, len(ft.savingGoals)),
		Recommendations: ft.Recommendations(),
	}
	for _, t := range ft.transactions {
		out.Transactions = append(out.Transactions, transactionYAML{
			Kind:       t.Kind().String(),
			Category:   t.Category(),
			Amount:     t.Amount().StringFixed(2),
			Date:       model.FormatDate(t.Date()),
			HasReceipt: t.HasReceipt(),
		})
	}
	for _, g := range ft.savingGoals {
		out.SavingGoals = append(out.SavingGoals, savingGoalYAML{
			Name:      g.Name(),
			Target:    g.Target().StringFixed(2),
			Saved:     g.SavedAmount().StringFixed(2),
			Remaining: g.AmountRemaining().StringFixed(2),
			Deadline:  model.FormatDate(g.Deadline()),
		})
	}
	return yaml.Marshal(out)
}

func (ft *FinanceTracker) ExportYAML(path string) error {
	b, err := ft.EncodeYAML()
	if err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write yaml report %s: %w", path, err)
	}
	return nil
}
