package cmd

import (
	"os"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, _ := app.ResolveDBPath(cfg)

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		DBPath:       dbPath,
		DBExists:     dbExists,
		MonthlyLimit: utils.FormatAmount(r.svc.Finance.BudgetSummary().MonthlyLimit),
		BinaryBackup: cfg.Backup.BinaryPath,
		TextBackup:   cfg.Backup.TextPath,
		YAMLExport:   cfg.Backup.YAMLPath,
		LogLevel:     cfg.Log.Level,
		AppDataDir:   getAppDataDirOrUnknown(),
	}

	ui.PrintL1Title("fintrack")
	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
