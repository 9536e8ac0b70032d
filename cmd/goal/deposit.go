package goal

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type DepositCommandRunner struct {
	svc *service.Service
}

func NewDepositCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "deposit <name> [amount]",
		Aliases: []string{"save"},
		Short:   "Add savings to a goal",
		Example: `  fintrack goal deposit "New Car" 500`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DepositCommandRunner{svc: svc}
			return runner.Run(args)
		},
	}
}

func (r *DepositCommandRunner) Run(args []string) error {
	name := args[0]

	var amount string
	if len(args) == 2 {
		amount = args[1]
	} else {
		var err error
		amount, err = prompts.PromptAmount("Amount to save:", "Positive number, e.g. 500", validation.ValidatePositiveAmount)
		if err != nil {
			return err
		}
	}

	found, err := r.svc.Finance.AddToSavingGoal(name, amount)
	if err != nil {
		return err
	}
	// The tracker already reported the missing goal.
	if !found {
		return nil
	}

	g, _ := r.svc.Finance.Tracker().FindSavingGoal(name)
	pterm.Success.Printf("Saved. %s (%s%%)\n", g.Display(), g.Progress().StringFixed(1))
	return nil
}
