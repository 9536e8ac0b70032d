package goal

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Plain bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saving goals with their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print one plain line per goal")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	if r.flags.Plain {
		r.svc.Finance.Tracker().ViewSavingGoals()
		return nil
	}
	return views.RenderGoalList(r.svc.Finance.ListSavingGoals())
}
