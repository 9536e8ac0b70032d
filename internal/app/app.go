package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/logger"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initialize database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log := logger.New(cfg.Log.Level, os.Stderr)
	log.Debug("opened database", log.Args("path", dbPath))

	svc, err := service.NewService(dbStore, cfg, log, os.Stdout)
	if err != nil {
		dbStore.Close()
		return nil, nil, fmt.Errorf("failed to load finance data: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

// ResolveDBPath expands database.path, falling back to the app data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "fintrack.db"), nil
	}
	return ExpandPath(cfg.Database.Path)
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".fintrack"), nil
	}

	return filepath.Join(configDir, "fintrack"), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
