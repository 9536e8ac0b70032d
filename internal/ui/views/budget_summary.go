package views

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderBudgetSummary(summary service.BudgetSummary) error {
	pterm.DefaultSection.Println("Budget")

	remaining := utils.FormatAmount(summary.Remaining)
	if summary.Remaining.IsNegative() {
		remaining = pterm.Red(remaining)
	} else {
		remaining = pterm.Green(remaining)
	}

	tableData := pterm.TableData{
		{"Monthly Limit", utils.FormatAmount(summary.MonthlyLimit)},
		{"Total Income", pterm.Green(utils.FormatAmount(summary.TotalIncome))},
		{"Total Expense", pterm.Red(utils.FormatAmount(summary.TotalExpense))},
		{"Remaining", remaining},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	RenderRecommendations(summary.Recommendations)
	return nil
}

func RenderRecommendations(recs []string) {
	if len(recs) == 0 {
		pterm.Success.Println("Your finances look healthy")
		return
	}
	for _, rec := range recs {
		pterm.Warning.Println(rec)
	}
}
