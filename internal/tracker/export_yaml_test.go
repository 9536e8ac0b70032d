package tracker

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncodeYAML(t *testing.T) {
	var out bytes.Buffer
	ft := sampleTracker(t, &out)
	if _, err := ft.AddSavingGoal("New Car", dec("20000"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}

	b, err := ft.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	var got reportYAML
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	if got.RemainingBudget != "3850.00" {
		t.Errorf("remaining_budget = %q, want 3850.00", got.RemainingBudget)
	}
	if got.TotalIncome != "3000.00" || got.TotalExpense != "1150.00" {
		t.Errorf("totals = %q/%q", got.TotalIncome, got.TotalExpense)
	}
	if len(got.Transactions) != 3 || got.Transactions[1].Kind != "Expense" || got.Transactions[1].Date != "2023-10-11" {
		t.Errorf("unexpected transactions %+v", got.Transactions)
	}
	if len(got.SavingGoals) != 1 || got.SavingGoals[0].Remaining != "20000.00" {
		t.Errorf("unexpected goals %+v", got.SavingGoals)
	}
	if len(got.Recommendations) != 0 {
		t.Errorf("unexpected recommendations %v", got.Recommendations)
	}
}
