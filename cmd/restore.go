package cmd

import (
	"fmt"

	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type restoreFlags struct {
	Format string
	Input  string
	Yes    bool
}

type restoreRunner struct {
	svc   *service.Service
	flags *restoreFlags
}

func NewRestoreCmd(svc *service.Service) *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace all data with a snapshot",
		Long: `Replace transactions, the budget and saving goals with the content of a snapshot file.
Nothing is changed when the snapshot can't be read.`,
		Example: `  fintrack restore
  fintrack restore --format text --input ~/finance.txt --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &restoreRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "binary", "Snapshot format: binary or text")
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Snapshot file, default comes from backup.*_path")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *restoreRunner) Run() error {
	format, err := service.ParseFormat(r.flags.Format)
	if err != nil {
		return err
	}

	path, err := snapshotPath(r.svc, format, r.flags.Input)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		msg := fmt.Sprintf("Replace all current data with %s?", path)
		confirmed, err := ui.Confirm(msg, false)
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Warning.Println("Operation Cancelled")
			return nil
		}
	}

	restored, err := r.svc.Finance.Restore(format, path)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Restored %d transactions and %d saving goals from %s\n",
		len(restored.Transactions()), len(restored.SavingGoals()), path)
	return nil
}
