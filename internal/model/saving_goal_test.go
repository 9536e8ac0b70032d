package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSavingGoal_AddSavings(t *testing.T) {
	goal, err := NewSavingGoal("New Car", decimal.NewFromInt(20000), "2024-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !goal.SavedAmount().IsZero() {
		t.Fatalf("new goal saved = %s, want 0", goal.SavedAmount())
	}

	goal.AddSavings(decimal.NewFromInt(500))

	if !goal.SavedAmount().Equal(decimal.NewFromInt(500)) {
		t.Errorf("saved = %s, want 500", goal.SavedAmount())
	}
	if !goal.AmountRemaining().Equal(decimal.NewFromInt(19500)) {
		t.Errorf("remaining = %s, want 19500", goal.AmountRemaining())
	}
	if got, want := goal.Display(), "New Car - Goal: $20000, Saved: $500, Remaining: $19500, Deadline: 2024-12-31"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got := goal.Progress(); !got.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Progress() = %s, want 2.5", got)
	}
}

func TestSavingGoal_Overshoot(t *testing.T) {
	goal, err := NewSavingGoal("Vacation", decimal.NewFromInt(100), "2023-12-15")
	if err != nil {
		t.Fatal(err)
	}
	goal.AddSavings(decimal.NewFromInt(150))

	if !goal.AmountRemaining().Equal(decimal.NewFromInt(-50)) {
		t.Errorf("remaining = %s, want -50", goal.AmountRemaining())
	}
}

func TestSavingGoal_BadDeadline(t *testing.T) {
	_, err := NewSavingGoal("Vacation", decimal.NewFromInt(100), "next year")
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}
