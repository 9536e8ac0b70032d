package tracker

import (
	"fmt"

	"github.com/pterm/pterm"
)

const (
	RecommendationExpensesOverIncome = "Your expenses are higher than your income!"
	RecommendationBudgetExceeded     = "You have exceeded your monthly budget!"
)

func (ft *FinanceTracker) ViewTransactions() {
	for _, t := range ft.transactions {
		pterm.Fprintln(ft.out, t.Display())
	}
}

func (ft *FinanceTracker) ViewRemainingBudget() {
	pterm.Fprintln(ft.out, fmt.Sprintf("Remaining Budget: $%s", ft.RemainingBudget()))
}

func (ft *FinanceTracker) GiveRecommendations() {
	for _, rec := range ft.Recommendations() {
		pterm.Fprint(ft.out, pterm.Warning.Sprintln(rec))
	}
}

func (ft *FinanceTracker) ViewSavingGoals() {
	for _, goal := range ft.savingGoals {
		pterm.Fprintln(ft.out, goal.Display())
	}
}

func (ft *FinanceTracker) reportGoalNotFound(name string) {
	pterm.Fprint(ft.out, pterm.Warning.Sprintln(fmt.Sprintf("Goal named '%s' not found.", name)))
}
