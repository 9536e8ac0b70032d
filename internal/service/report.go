package service

import "github.com/pterm/pterm"

// Report prints the plain-text summary: transactions, insights, budget and saving goals.
func (fs *FinanceService) Report() {
	pterm.Fprintln(fs.out, "Transactions:")
	fs.tracker.ViewTransactions()
	pterm.Fprintln(fs.out)

	pterm.Fprintln(fs.out, "Financial Insights:")
	fs.tracker.GiveRecommendations()
	pterm.Fprintln(fs.out)

	pterm.Fprintln(fs.out, "Budget Information:")
	fs.tracker.ViewRemainingBudget()
	pterm.Fprintln(fs.out)

	pterm.Fprintln(fs.out, "Saving Goals:")
	fs.tracker.ViewSavingGoals()
}
