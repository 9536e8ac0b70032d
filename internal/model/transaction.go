package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindIncome Kind = iota + 1
	KindExpense
)

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return constants.KindIncome
	case KindExpense:
		return constants.KindExpense
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind accepts "income" or "expense" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Transaction is an income or expense record. It is immutable once built.
type Transaction struct {
	kind     Kind
	category string
	amount   decimal.Decimal
	date     time.Time
	receipt  *Receipt
}

// NewTransaction builds a transaction from user input. The date must be YYYY-MM-DD and,
// when receiptPath is set, the receipt file is read into memory right away.
func NewTransaction(kind Kind, category string, amount decimal.Decimal, date string, receiptPath string) (*Transaction, error) {
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	if receiptPath != "" {
		receipt, err = LoadReceipt(receiptPath)
		if err != nil {
			return nil, err
		}
	}

	return RestoreTransaction(kind, category, amount, d, receipt)
}

// RestoreTransaction rebuilds a transaction from already parsed values (storage, snapshots).
func RestoreTransaction(kind Kind, category string, amount decimal.Decimal, date time.Time, receipt *Receipt) (*Transaction, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}

	return &Transaction{
		kind:     kind,
		category: category,
		amount:   amount,
		date:     truncateDate(date),
		receipt:  receipt,
	}, nil
}

func (t *Transaction) Kind() Kind              { return t.kind }
func (t *Transaction) Category() string        { return t.category }
func (t *Transaction) Amount() decimal.Decimal { return t.amount }
func (t *Transaction) Date() time.Time         { return t.date }
func (t *Transaction) Receipt() *Receipt       { return t.receipt }
func (t *Transaction) HasReceipt() bool        { return t.receipt != nil }

func (t *Transaction) IsIncome() bool  { return t.kind == KindIncome }
func (t *Transaction) IsExpense() bool { return t.kind == KindExpense }

// Display renders the transaction as a single report line.
func (t *Transaction) Display() string {
	sign := "-"
	if t.kind == KindIncome {
		sign = "+"
	}
	return fmt.Sprintf("%s | %s | %s | %s$%s", FormatDate(t.date), t.kind, t.category, sign, t.amount)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(constants.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
