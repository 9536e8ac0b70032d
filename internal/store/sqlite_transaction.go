package store

import (
	"errors"
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateTransaction(tx *model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (kind, category, amount, date, receipt)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	var receipt []byte
	if r := tx.Receipt(); r != nil {
		receipt = r.Bytes()
	}

	var newID int64
	err = stmt.QueryRow(
		tx.Kind().String(),
		tx.Category(),
		tx.Amount().String(),
		model.FormatDate(tx.Date()),
		receipt,
	).Scan(&newID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return 0, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

// GetAllTransactions returns every transaction in insertion order.
func (s *Store) GetAllTransactions() ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, category, amount, date, receipt IS NOT NULL, receipt
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var row transactionRow
		err := rows.Scan(
			&row.ID, &row.Kind, &row.Category,
			&row.Amount, &row.Date, &row.HasReceipt,
			&row.Receipt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx, err := row.toModel()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
