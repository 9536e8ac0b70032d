package goal

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Target   string
	Deadline string
}

type AddCommandRunner struct {
	svc   *service.Service
	flags *addFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a saving goal",
		Long: `Create a saving goal with a target amount and a deadline.
Missing values are asked for interactively.`,
		Example: `  fintrack goal add "New Car" --target 20000 --deadline 2024-12-31`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AddCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Target amount")
	cmd.Flags().StringVarP(&flags.Deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func (r *AddCommandRunner) Run(args []string) error {
	prefill := prompts.GoalAnswers{
		Target:   r.flags.Target,
		Deadline: r.flags.Deadline,
	}
	if len(args) == 1 {
		prefill.Name = args[0]
	}

	answers, err := prompts.PromptSavingGoal(prefill)
	if err != nil {
		return err
	}

	goal, err := r.svc.Finance.AddSavingGoal(answers.Name, answers.Target, answers.Deadline)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Saving goal '%s' created\n", goal.Name())
	pterm.Println(goal.Display())
	return nil
}
