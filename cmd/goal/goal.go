package goal

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func NewGoalCmd(svc *service.Service) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Create saving goals, deposit into them and show their progress.",
		Long:  `Create saving goals, deposit into them and show their progress.`,
	}

	goalCmd.AddCommand(NewAddCmd(svc))
	goalCmd.AddCommand(NewListCmd(svc))
	goalCmd.AddCommand(NewDepositCmd(svc))

	return goalCmd
}
