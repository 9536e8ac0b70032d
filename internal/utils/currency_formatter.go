package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals, e.g. "150.00".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatSigned renders an amount with an explicit sign and dollar prefix, e.g. "-$150.00".
func FormatSigned(d decimal.Decimal, negative bool) string {
	sign := "+"
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s", sign, FormatAmount(d))
}

// ParseAmount parses a non-negative amount such as "150", "150.5" or "1,250.75".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	if s == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount can't be negative: %s", amountStr)
	}

	return d, nil
}
