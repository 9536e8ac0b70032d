package cmd

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Output string
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a YAML report",
		Long: `Export transactions, budget figures and saving goals as YAML.
The export is one-way and can't be restored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.Output
			if path == "" {
				path = svc.Config.Backup.YAMLPath
			}
			path, err := app.ExpandPath(path)
			if err != nil {
				return err
			}

			if err := svc.Finance.ExportYAML(path); err != nil {
				return err
			}
			pterm.Success.Printf("Report exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file, default is backup.yaml_path")

	return cmd
}
