package service

import (
	"fmt"
	"strings"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/tracker"
)

type Format string

const (
	FormatBinary Format = constants.FormatBinary
	FormatText   Format = constants.FormatText
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.FormatBinary, "bin":
		return FormatBinary, nil
	case constants.FormatText, "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (use binary or text)", ErrUnknownFormat, s)
	}
}

// DefaultPath returns the configured backup path for the format.
func (s *Service) DefaultPath(format Format) string {
	if format == FormatText {
		return s.Config.Backup.TextPath
	}
	return s.Config.Backup.BinaryPath
}

// Backup writes a snapshot of the working state to path.
func (fs *FinanceService) Backup(format Format, path string) error {
	var err error
	switch format {
	case FormatBinary:
		err = fs.tracker.BackupToBinary(path)
	case FormatText:
		err = fs.tracker.BackupToText(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	fs.log.Debug("wrote backup", fs.log.Args("format", string(format), "path", path))
	return nil
}

// Restore replaces the working state with the snapshot at path. The store is rewritten in
// one database transaction, so a failing restore leaves the previous state in place.
func (fs *FinanceService) Restore(format Format, path string) (*tracker.FinanceTracker, error) {
	var (
		restored *tracker.FinanceTracker
		err      error
	)
	switch format {
	case FormatBinary:
		restored, err = tracker.RestoreFromBinary(path, tracker.WithOutput(fs.out))
	case FormatText:
		restored, err = tracker.RestoreFromText(path, tracker.WithOutput(fs.out))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	err = fs.repo.ExecTx(func(repo store.Repository) error {
		if err := repo.ClearAll(); err != nil {
			return err
		}
		if err := repo.SetMonthlyLimit(restored.Budget().MonthlyLimit); err != nil {
			return err
		}
		for _, tx := range restored.Transactions() {
			if _, err := repo.CreateTransaction(tx); err != nil {
				return err
			}
		}
		for _, goal := range restored.SavingGoals() {
			if _, err := repo.CreateSavingGoal(goal); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace working state: %w", err)
	}

	fs.tracker = restored
	fs.log.Debug("restored backup", fs.log.Args(
		"format", string(format),
		"path", path,
		"transactions", len(restored.Transactions()),
		"saving_goals", len(restored.SavingGoals()),
	))
	return restored, nil
}

func (fs *FinanceService) ExportYAML(path string) error {
	if err := fs.tracker.ExportYAML(path); err != nil {
		return err
	}
	fs.log.Debug("exported yaml report", fs.log.Args("path", path))
	return nil
}
