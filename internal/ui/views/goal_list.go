package views

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderGoalList(goals []*model.SavingGoal) error {
	if len(goals) == 0 {
		pterm.Warning.Println("No saving goals found")
		return nil
	}

	pterm.DefaultSection.Println("Saving Goals")

	tableData := pterm.TableData{
		{"Name", "Target", "Saved", "Remaining", "Progress", "Deadline"},
	}

	for _, g := range goals {
		remaining := utils.FormatAmount(g.AmountRemaining())
		if !g.AmountRemaining().IsPositive() {
			remaining = pterm.Green(remaining)
		}
		tableData = append(tableData, []string{
			g.Name(),
			utils.FormatAmount(g.Target()),
			utils.FormatAmount(g.SavedAmount()),
			remaining,
			g.Progress().StringFixed(1) + "%",
			model.FormatDate(g.Deadline()),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d goals\n", len(goals))
	return nil
}
