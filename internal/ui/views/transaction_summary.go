package views

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionSummary(tx *model.Transaction) error {
	pterm.DefaultSection.Println("Transaction Summary")

	receipt := "None"
	if tx.HasReceipt() {
		receipt = pterm.Sprintf("%d bytes attached", tx.Receipt().Size())
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", model.FormatDate(tx.Date())},
		{"Kind", ui.ColorByKind(tx.Kind().String(), tx.Kind().String())},
		{"Category", tx.Category()},
		{"Amount", ui.ColorByKind(tx.Kind().String(), utils.FormatSigned(tx.Amount(), tx.IsExpense()))},
		{"Receipt", receipt},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
