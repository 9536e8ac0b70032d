package prompts

import (
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/validation"
)

// TransactionAnswers holds the raw answers of the add form.
type TransactionAnswers struct {
	Kind        model.Kind
	Category    string
	Amount      string
	Date        string
	ReceiptPath string
}

// PromptTransactionKind prompts for Income or Expense
func PromptTransactionKind(defaultKind model.Kind) (model.Kind, error) {
	options := []string{constants.KindExpense, constants.KindIncome}

	if !defaultKind.Valid() {
		defaultKind = model.KindExpense
	}

	selected, err := PromptSelect("Choose the transaction type:", options, defaultKind.String())
	if err != nil {
		return 0, err
	}

	return model.ParseKind(selected)
}

// PromptTransaction runs the interactive add form. The kind is asked first
// unless it was already given on the command line.
func PromptTransaction(kind model.Kind) (TransactionAnswers, error) {
	var err error
	if !kind.Valid() {
		kind, err = PromptTransactionKind(model.KindExpense)
		if err != nil {
			return TransactionAnswers{}, err
		}
	}

	answers := TransactionAnswers{Kind: kind}
	today := time.Now().Format(constants.DateFormat)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category:").
				Description("e.g. Salary, Rent, Groceries").
				Value(&answers.Category).
				Validate(validation.ValidateCategory),
			huh.NewInput().
				Title("Amount:").
				Description("Positive number, e.g. 150 or 150.50").
				Value(&answers.Amount).
				Validate(validation.ValidatePositiveAmount),
			huh.NewInput().
				Title("Date (YYYY-MM-DD):").
				Placeholder(today).
				Value(&answers.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validation.ValidateDate(s)
				}),
			huh.NewInput().
				Title("Receipt file (optional):").
				Description("Path to an image or PDF, leave empty to skip").
				Value(&answers.ReceiptPath),
		),
	)

	if err := form.Run(); err != nil {
		return TransactionAnswers{}, err
	}

	if strings.TrimSpace(answers.Date) == "" {
		answers.Date = today
	}
	answers.Category = strings.TrimSpace(answers.Category)
	answers.ReceiptPath = strings.TrimSpace(answers.ReceiptPath)

	return answers, nil
}
