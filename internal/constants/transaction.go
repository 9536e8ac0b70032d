package constants

const (
	// Transaction Kinds
	KindIncome  = "Income"
	KindExpense = "Expense"

	// Date Layout
	DateFormat = "2006-01-02"
)

const (
	MaxNameLen = 100
)
