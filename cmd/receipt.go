package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewReceiptCmd(svc *service.Service) *cobra.Command {
	receiptCmd := &cobra.Command{
		Use:   "receipt",
		Short: "Work with receipts attached to transactions",
	}

	receiptCmd.AddCommand(newReceiptExportCmd(svc))

	return receiptCmd
}

type receiptExportFlags struct {
	Force bool
}

type receiptExportRunner struct {
	svc   *service.Service
	flags *receiptExportFlags
}

func newReceiptExportCmd(svc *service.Service) *cobra.Command {
	flags := &receiptExportFlags{}

	cmd := &cobra.Command{
		Use:   "export <transaction-no> <output>",
		Short: "Save the receipt of a transaction to a file",
		Long: `Save the receipt of a transaction to a file.
Transactions are numbered as in "fintrack list", starting at 1.`,
		Example: `  fintrack receipt export 3 ./dinner.jpg`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &receiptExportRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite the output file without asking")

	return cmd
}

func (r *receiptExportRunner) Run(args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid transaction number: %s", args[0])
	}

	path, err := app.ExpandPath(args[1])
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !r.flags.Force {
		overwrite, err := prompts.PromptConfirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			pterm.Warning.Println("Operation Cancelled")
			return nil
		}
	}

	if err := r.svc.Finance.ExportReceipt(n, path); err != nil {
		return err
	}

	pterm.Success.Printf("Receipt of transaction #%d saved to %s\n", n, path)
	return nil
}
