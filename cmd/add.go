package cmd

import (
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Category string
	Amount   string
	Date     string
	Receipt  string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [income|expense]",
		Short: "Add a new transaction",
		Long: `Add an income or expense to your records.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode
	fintrack add

	# Quick mode with flags
	fintrack add income --category Salary --amount 3000 --date 2023-10-10
	fintrack add expense --category Dinner --amount 45.50 --receipt ./dinner.jpg`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"income", "expense"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}
	cmd.Flags().StringVar(&flags.Category, "category", "", "Transaction category (e.g., Salary, Rent)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Receipt, "receipt", "r", "", "Path of a receipt file to attach")

	return cmd
}

func (r *addRunner) Run(args []string) error {
	var kind model.Kind
	if len(args) == 1 {
		k, err := model.ParseKind(args[0])
		if err != nil {
			return err
		}
		kind = k
	}

	hasFlags := r.cmd.Flags().Changed("category") || r.cmd.Flags().Changed("amount")

	var input service.TransactionInput
	var err error
	if hasFlags {
		input, err = r.flagsMode(kind)
	} else {
		input, err = r.interactiveMode(kind)
	}
	if err != nil {
		return err
	}

	tx, err := r.svc.Finance.AddTransaction(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("%s recorded successfully!\n", tx.Kind())

	if err := views.RenderTransactionSummary(tx); err != nil {
		return err
	}
	ui.PrintSeparator()
	return nil
}

func (r *addRunner) flagsMode(kind model.Kind) (service.TransactionInput, error) {
	if !kind.Valid() {
		return service.TransactionInput{}, fmt.Errorf("when using flags, the transaction type (income or expense) is required")
	}
	if r.flags.Category == "" || r.flags.Amount == "" {
		return service.TransactionInput{}, fmt.Errorf("when using flags, --category and --amount are both required")
	}

	return service.TransactionInput{
		Kind:        kind,
		Category:    r.flags.Category,
		Amount:      r.flags.Amount,
		Date:        r.flags.Date,
		ReceiptPath: r.flags.Receipt,
	}, nil
}

func (r *addRunner) interactiveMode(kind model.Kind) (service.TransactionInput, error) {
	answers, err := prompts.PromptTransaction(kind)
	if err != nil {
		return service.TransactionInput{}, err
	}

	return service.TransactionInput{
		Kind:        answers.Kind,
		Category:    answers.Category,
		Amount:      answers.Amount,
		Date:        answers.Date,
		ReceiptPath: answers.ReceiptPath,
	}, nil
}
