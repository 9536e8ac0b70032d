package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"150", "150", true},
		{"150.5", "150.5", true},
		{" 150.50 ", "150.5", true},
		{"$20", "20", true},
		{"1,250.75", "1250.75", true},
		{"0", "0", true},
		{"-1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(decimal.NewFromInt(150), true); got != "-$150.00" {
		t.Errorf("FormatSigned expense = %q", got)
	}
	if got := FormatSigned(decimal.RequireFromString("3000.5"), false); got != "+$3000.50" {
		t.Errorf("FormatSigned income = %q", got)
	}
}
