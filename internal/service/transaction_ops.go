package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/hance08/fintrack/internal/validation"
)

type TransactionInput struct {
	Kind        model.Kind
	Category    string
	Amount      string
	Date        string // YYYY-MM-DD, empty means today
	ReceiptPath string
}

// AddTransaction validates the input, persists the transaction and appends it to the tracker.
func (fs *FinanceService) AddTransaction(input TransactionInput) (*model.Transaction, error) {
	category := strings.TrimSpace(input.Category)
	if err := validation.ValidateCategory(category); err != nil {
		return nil, err
	}

	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	tx, err := model.NewTransaction(input.Kind, category, amount, date, strings.TrimSpace(input.ReceiptPath))
	if err != nil {
		return nil, err
	}

	if _, err := fs.repo.CreateTransaction(tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	fs.tracker.Append(tx)

	fs.log.Debug("added transaction", fs.log.Args(
		"kind", tx.Kind().String(),
		"category", tx.Category(),
		"amount", tx.Amount().String(),
		"receipt", tx.HasReceipt(),
	))
	return tx, nil
}

func (fs *FinanceService) ListTransactions() []*model.Transaction {
	return fs.tracker.Transactions()
}

// TransactionAt returns the n-th transaction, counting from 1 in list order.
func (fs *FinanceService) TransactionAt(n int) (*model.Transaction, error) {
	txs := fs.tracker.Transactions()
	if n < 1 || n > len(txs) {
		return nil, fmt.Errorf("%w: #%d", ErrTransactionNotFound, n)
	}
	return txs[n-1], nil
}

// ExportReceipt writes the receipt of the n-th transaction to path.
func (fs *FinanceService) ExportReceipt(n int, path string) error {
	tx, err := fs.TransactionAt(n)
	if err != nil {
		return err
	}
	if !tx.HasReceipt() {
		return fmt.Errorf("%w: #%d", ErrNoReceipt, n)
	}
	if err := tx.Receipt().Save(path); err != nil {
		return err
	}

	fs.log.Debug("exported receipt", fs.log.Args("transaction", n, "path", path, "bytes", tx.Receipt().Size()))
	return nil
}
