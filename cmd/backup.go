package cmd

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type backupFlags struct {
	Format string
	Output string
}

type backupRunner struct {
	svc   *service.Service
	flags *backupFlags
}

func NewBackupCmd(svc *service.Service) *cobra.Command {
	flags := &backupFlags{}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a snapshot of all data",
		Long: `Write transactions, the budget and saving goals to a snapshot file.

The binary format keeps receipts. The text format is human readable and drops them.`,
		Example: `  fintrack backup
  fintrack backup --format text --output ~/finance.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &backupRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "binary", "Snapshot format: binary or text")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file, default comes from backup.*_path")

	return cmd
}

func (r *backupRunner) Run() error {
	format, err := service.ParseFormat(r.flags.Format)
	if err != nil {
		return err
	}

	path, err := snapshotPath(r.svc, format, r.flags.Output)
	if err != nil {
		return err
	}

	if err := r.svc.Finance.Backup(format, path); err != nil {
		return err
	}

	pterm.Success.Printf("Backup written to %s\n", path)
	return nil
}

func snapshotPath(svc *service.Service, format service.Format, override string) (string, error) {
	path := override
	if path == "" {
		path = svc.DefaultPath(format)
	}
	return app.ExpandPath(path)
}
