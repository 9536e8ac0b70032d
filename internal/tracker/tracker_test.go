package tracker

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/hance08/fintrack/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleTracker mirrors the usual walkthrough: one salary and two bills on a 5000 limit.
func sampleTracker(t *testing.T, out *bytes.Buffer) *FinanceTracker {
	t.Helper()
	ft := New(dec("5000"), WithOutput(out))
	adds := []struct {
		kind     model.Kind
		category string
		amount   string
		date     string
	}{
		{model.KindIncome, "Salary", "3000", "2023-10-10"},
		{model.KindExpense, "Groceries", "150", "2023-10-11"},
		{model.KindExpense, "Rent", "1000", "2023-10-01"},
	}
	for _, a := range adds {
		if _, err := ft.AddTransaction(a.kind, a.category, dec(a.amount), a.date, ""); err != nil {
			t.Fatalf("AddTransaction(%s): %v", a.category, err)
		}
	}
	return ft
}

func TestFinanceTracker_RemainingBudget(t *testing.T) {
	var out bytes.Buffer
	ft := sampleTracker(t, &out)

	if got := ft.RemainingBudget(); !got.Equal(dec("3850")) {
		t.Fatalf("RemainingBudget() = %s, want 3850", got)
	}

	ft.ViewRemainingBudget()
	if got := out.String(); !strings.Contains(got, "Remaining Budget: $3850") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFinanceTracker_ViewTransactions(t *testing.T) {
	var out bytes.Buffer
	ft := sampleTracker(t, &out)

	ft.ViewTransactions()

	want := []string{
		"2023-10-10 | Income | Salary | +$3000",
		"2023-10-11 | Expense | Groceries | -$150",
		"2023-10-01 | Expense | Rent | -$1000",
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFinanceTracker_AddTransactionError(t *testing.T) {
	ft := New(dec("100"), WithOutput(&bytes.Buffer{}))
	if _, err := ft.AddTransaction(model.KindExpense, "Rent", dec("10"), "2023/10/01", ""); err == nil {
		t.Fatal("expected error for bad date")
	}
	if len(ft.Transactions()) != 0 {
		t.Errorf("failed add must not append, got %d transactions", len(ft.Transactions()))
	}
}

func TestFinanceTracker_Recommendations(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		txs   []struct {
			kind   model.Kind
			amount string
		}
		want []string
	}{
		{
			name:  "healthy",
			limit: "5000",
			txs: []struct {
				kind   model.Kind
				amount string
			}{{model.KindIncome, "3000"}, {model.KindExpense, "1150"}},
		},
		{
			name:  "expenses over income",
			limit: "5000",
			txs: []struct {
				kind   model.Kind
				amount string
			}{{model.KindIncome, "100"}, {model.KindExpense, "200"}},
			want: []string{RecommendationExpensesOverIncome},
		},
		{
			name:  "budget exceeded only",
			limit: "100",
			txs: []struct {
				kind   model.Kind
				amount string
			}{{model.KindIncome, "1000"}, {model.KindExpense, "200"}},
			want: []string{RecommendationBudgetExceeded},
		},
		{
			name:  "both",
			limit: "100",
			txs: []struct {
				kind   model.Kind
				amount string
			}{{model.KindExpense, "200"}},
			want: []string{RecommendationExpensesOverIncome, RecommendationBudgetExceeded},
		},
		{
			name:  "equal income and expense",
			limit: "500",
			txs: []struct {
				kind   model.Kind
				amount string
			}{{model.KindIncome, "200"}, {model.KindExpense, "200"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ft := New(dec(tt.limit), WithOutput(&out))
			for _, tx := range tt.txs {
				if _, err := ft.AddTransaction(tx.kind, "x", dec(tx.amount), "2023-10-01", ""); err != nil {
					t.Fatal(err)
				}
			}

			got := ft.Recommendations()
			if len(got) != len(tt.want) {
				t.Fatalf("Recommendations() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Recommendations()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}

			ft.GiveRecommendations()
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output %q missing %q", out.String(), w)
				}
			}
			if len(tt.want) == 0 && out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}
		})
	}
}

func TestFinanceTracker_AddToSavingGoal(t *testing.T) {
	var out bytes.Buffer
	ft := New(dec("5000"), WithOutput(&out))
	if _, err := ft.AddSavingGoal("New Car", dec("20000"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}
	if _, err := ft.AddSavingGoal("Vacation to Bali", dec("5000"), "2023-12-15"); err != nil {
		t.Fatal(err)
	}

	if !ft.AddToSavingGoal("New Car", dec("500")) {
		t.Fatal("expected goal to be found")
	}

	goals := ft.SavingGoals()
	if !goals[0].SavedAmount().Equal(dec("500")) || !goals[0].AmountRemaining().Equal(dec("19500")) {
		t.Errorf("New Car saved=%s remaining=%s", goals[0].SavedAmount(), goals[0].AmountRemaining())
	}
	if !goals[1].SavedAmount().IsZero() {
		t.Errorf("other goal changed: saved=%s", goals[1].SavedAmount())
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output on hit: %q", out.String())
	}
}

func TestFinanceTracker_AddToSavingGoal_NotFound(t *testing.T) {
	var out bytes.Buffer
	ft := New(dec("5000"), WithOutput(&out))
	if _, err := ft.AddSavingGoal("New Car", dec("20000"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}

	if ft.AddToSavingGoal("Boat", dec("500")) {
		t.Fatal("expected miss")
	}
	if !ft.SavingGoals()[0].SavedAmount().IsZero() {
		t.Errorf("saved changed on miss: %s", ft.SavingGoals()[0].SavedAmount())
	}
	if !strings.Contains(out.String(), "Goal named 'Boat' not found.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFinanceTracker_DuplicateGoalFirstMatchWins(t *testing.T) {
	ft := New(dec("0"), WithOutput(&bytes.Buffer{}))
	for i := 0; i < 2; i++ {
		if _, err := ft.AddSavingGoal("Fund", dec("100"), "2024-01-01"); err != nil {
			t.Fatal(err)
		}
	}

	ft.AddToSavingGoal("Fund", dec("10"))

	goals := ft.SavingGoals()
	if !goals[0].SavedAmount().Equal(dec("10")) || !goals[1].SavedAmount().IsZero() {
		t.Errorf("saved = [%s %s], want [10 0]", goals[0].SavedAmount(), goals[1].SavedAmount())
	}
}

func TestFinanceTracker_ViewSavingGoals(t *testing.T) {
	var out bytes.Buffer
	ft := New(dec("0"), WithOutput(&out))
	if _, err := ft.AddSavingGoal("New Car", dec("20000"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}
	ft.AddToSavingGoal("New Car", dec("500"))

	ft.ViewSavingGoals()

	want := "New Car - Goal: $20000, Saved: $500, Remaining: $19500, Deadline: 2024-12-31\n"
	if out.String() != want {
		t.Errorf("ViewSavingGoals() wrote %q, want %q", out.String(), want)
	}
}
