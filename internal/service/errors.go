package service

import "errors"

var (
	ErrGoalExists          = errors.New("saving goal already exists")
	ErrNoReceipt           = errors.New("transaction has no receipt")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnknownFormat       = errors.New("unknown snapshot format")
)
