package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/fintrack/cmd/goal"
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/errhandler"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const monthlyLimitKey = "budget.monthly_limit"

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE once flags are parsed.
	svc := &service.Service{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:           "fintrack",
		Short:         "fintrack is a CLI based personal finance tracker",
		Long:          `fintrack records income and expenses, watches a monthly budget and tracks saving goals.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			application, closeApp, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			cleanup = closeApp

			*svc = *application.Service
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewAddCmd(svc))
	rootCmd.AddCommand(NewListCmd(svc))
	rootCmd.AddCommand(NewBudgetCmd(svc))
	rootCmd.AddCommand(NewRecommendCmd(svc))
	rootCmd.AddCommand(NewReportCmd(svc))
	rootCmd.AddCommand(goal.NewGoalCmd(svc))
	rootCmd.AddCommand(NewBackupCmd(svc))
	rootCmd.AddCommand(NewRestoreCmd(svc))
	rootCmd.AddCommand(NewReceiptCmd(svc))
	rootCmd.AddCommand(NewExportCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() error {
	// A missing .env is fine.
	_ = godotenv.Load()

	defaults := config.NewDefault()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("backup.binary_path", defaults.Backup.BinaryPath)
	viper.SetDefault("backup.text_path", defaults.Backup.TextPath)
	viper.SetDefault("backup.yaml_path", defaults.Backup.YAMLPath)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("FINTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if needsSetup() {
		if err := initWizard(defaults.Budget.MonthlyLimit); err != nil {
			return err
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// needsSetup reports whether no monthly limit was ever chosen.
func needsSetup() bool {
	if viper.InConfig(monthlyLimitKey) {
		return false
	}
	_, fromEnv := os.LookupEnv("FINTRACK_BUDGET_MONTHLY_LIMIT")
	return !fromEnv
}

func initWizard(limitDefault string) error {
	limit, err := prompts.PromptInitMonthlyLimit(limitDefault)
	if err != nil {
		return err
	}

	viper.Set(monthlyLimitKey, limit)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Monthly budget set to: %s\n", limit)

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
