package cmd

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/hance08/fintrack/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewBudgetCmd(svc *service.Service) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or change the monthly budget",
		Long:  `Show the monthly budget with totals, or set a new monthly limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderBudgetSummary(svc.Finance.BudgetSummary())
		},
	}

	budgetCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the monthly budget and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderBudgetSummary(svc.Finance.BudgetSummary())
		},
	})
	budgetCmd.AddCommand(newBudgetSetCmd(svc))

	return budgetCmd
}

type budgetSetRunner struct {
	svc *service.Service
}

func newBudgetSetCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "set [limit]",
		Short: "Set the monthly spending limit",
		Example: `  fintrack budget set 2000
  fintrack budget set`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &budgetSetRunner{svc: svc}
			return runner.Run(args)
		},
	}
}

func (r *budgetSetRunner) Run(args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		current := utils.FormatAmount(r.svc.Finance.BudgetSummary().MonthlyLimit)
		var err error
		raw, err = prompts.PromptInput("New monthly limit:", current, validation.ValidateAmount)
		if err != nil {
			return err
		}
	}

	limit, err := r.svc.Finance.SetMonthlyLimit(raw)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Monthly limit set to $%s\n", utils.FormatAmount(limit))
	return nil
}
