package cmd

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func NewReportCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a plain text report",
		Long:  `Print transactions, insights, budget information and saving goals as plain text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc.Finance.Report()
			return nil
		},
	}
}
