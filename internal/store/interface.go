package store

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Budget Operations
	GetMonthlyLimit() (decimal.Decimal, bool, error)
	SetMonthlyLimit(limit decimal.Decimal) error

	// Transaction Operations
	CreateTransaction(tx *model.Transaction) (int64, error)
	GetAllTransactions() ([]*model.Transaction, error)

	// Saving Goal Operations
	CreateSavingGoal(goal *model.SavingGoal) (int64, error)
	GetAllSavingGoals() ([]*model.SavingGoal, error)
	UpdateSavedAmount(name string, saved decimal.Decimal) error

	ClearAll() error
	ExecTx(fn func(Repository) error) error
	Close() error
}
