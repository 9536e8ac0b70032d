package views

import (
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionListItem struct {
	No       int
	Date     string
	Kind     string
	Category string
	Amount   string
	Balance  string
	Receipt  string
}

// BuildTransactionList turns transactions into table rows with a running balance.
func BuildTransactionList(txs []*model.Transaction) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	balance := decimal.Zero

	for i, tx := range txs {
		if tx.IsIncome() {
			balance = balance.Add(tx.Amount())
		} else {
			balance = balance.Sub(tx.Amount())
		}

		receipt := "-"
		if tx.HasReceipt() {
			receipt = fmt.Sprintf("%d bytes", tx.Receipt().Size())
		}

		items = append(items, TransactionListItem{
			No:       i + 1,
			Date:     model.FormatDate(tx.Date()),
			Kind:     tx.Kind().String(),
			Category: tx.Category(),
			Amount:   utils.FormatSigned(tx.Amount(), tx.IsExpense()),
			Balance:  utils.FormatAmount(balance),
			Receipt:  receipt,
		})
	}
	return items
}

func RenderTransactionList(items []TransactionListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Transactions")

	tableData := pterm.TableData{
		{"No", "Date", "Kind", "Category", "Amount", "Balance", "Receipt"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.No),
			item.Date,
			ui.ColorByKind(item.Kind, item.Kind),
			item.Category,
			ui.ColorByKind(item.Kind, item.Amount),
			item.Balance,
			item.Receipt,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
