package validation

import (
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "Groceries", ""},
		{"with spaces", "  Eating Out ", ""},
		{"empty", "   ", "category can't be empty"},
		{"separator", "Food | Drinks", "cannot contain '|'"},
		{"newline", "Food\nDrinks", "single line"},
		{"too long", strings.Repeat("x", 101), "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateGoalNameLabel(t *testing.T) {
	err := ValidateGoalName("")
	if err == nil || !strings.Contains(err.Error(), "goal name") {
		t.Fatalf("expected goal name error, got %v", err)
	}
}

func TestValidateAmounts(t *testing.T) {
	if err := ValidateAmount("0"); err != nil {
		t.Errorf("zero should be a valid amount: %v", err)
	}
	if err := ValidatePositiveAmount("0"); err == nil {
		t.Error("zero should not be a positive amount")
	}
	if err := ValidatePositiveAmount("12.50"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateAmount("-3"); err == nil {
		t.Error("negative amount should fail")
	}
}

func TestValidateDateAndKind(t *testing.T) {
	if err := ValidateDate("2023-10-11"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDate("11/10/2023"); err == nil {
		t.Error("expected date error")
	}
	if err := ValidateKind("expense"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateKind("transfer"); err == nil {
		t.Error("expected kind error")
	}
}
