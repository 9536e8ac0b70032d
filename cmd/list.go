package cmd

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Plain bool
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		Long: `List all transactions in the order they were recorded.

The table shows a running balance and whether a receipt is attached.`,
		Example: `  # Table view
  fintrack list

  # One line per transaction
  fintrack list --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print one plain line per transaction")

	return cmd
}

func (r *listRunner) Run() error {
	if r.flags.Plain {
		r.svc.Finance.Tracker().ViewTransactions()
		return nil
	}

	items := views.BuildTransactionList(r.svc.Finance.ListTransactions())
	return views.RenderTransactionList(items)
}
