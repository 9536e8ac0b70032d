package model

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrReceiptNotFound   = errors.New("receipt file not found")
	ErrNegativeAmount    = errors.New("amount can't be negative")
	ErrInvalidKind       = errors.New("unknown transaction kind")
)
