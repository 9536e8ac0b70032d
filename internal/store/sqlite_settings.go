package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// GetMonthlyLimit reports false when no limit has been stored yet.
func (s *Store) GetMonthlyLimit() (decimal.Decimal, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingMonthlyLimit).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to query monthly limit: %w", err)
	}

	limit, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("stored monthly limit %q is invalid: %w", raw, err)
	}
	return limit, true, nil
}

func (s *Store) SetMonthlyLimit(limit decimal.Decimal) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, settingMonthlyLimit, limit.String())
	if err != nil {
		return fmt.Errorf("failed to save monthly limit: %w", err)
	}
	return nil
}
