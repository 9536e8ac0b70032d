package cmd

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewRecommendCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"insights"},
		Short:   "Show financial recommendations",
		Long:    `Warn when expenses exceed income or the monthly budget.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			views.RenderRecommendations(svc.Finance.BudgetSummary().Recommendations)
			return nil
		},
	}
}
