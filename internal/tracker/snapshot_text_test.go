package tracker

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/fintrack/internal/model"
)

func TestTextSnapshot_Layout(t *testing.T) {
	var out bytes.Buffer
	ft := sampleTracker(t, &out)
	if _, err := ft.AddSavingGoal("New Car", dec("20000"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}
	ft.AddToSavingGoal("New Car", dec("500"))

	var buf bytes.Buffer
	if err := ft.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	want := strings.Join([]string{
		"5000",
		"---",
		"Income | Salary | 3000 | 2023-10-10",
		"Expense | Groceries | 150 | 2023-10-11",
		"Expense | Rent | 1000 | 2023-10-01",
		"---",
		"New Car | 20000 | 2024-12-31 | 500",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("WriteText() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextSnapshot_RoundTrip(t *testing.T) {
	ft := trackerWithReceipts(t)
	path := filepath.Join(t.TempDir(), "backup.txt")

	if err := ft.BackupToText(path); err != nil {
		t.Fatalf("BackupToText: %v", err)
	}
	restored, err := RestoreFromText(path, WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("RestoreFromText: %v", err)
	}

	assertSameState(t, restored, ft)
	for i, tx := range restored.Transactions() {
		if tx.HasReceipt() {
			t.Errorf("transaction %d: receipts are not stored in text snapshots", i)
		}
	}
}

func TestTextSnapshot_EmptySections(t *testing.T) {
	restored, err := ReadText(strings.NewReader("250.5\n---\n---\n"))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if !restored.Budget().MonthlyLimit.Equal(dec("250.5")) {
		t.Errorf("monthly limit = %s", restored.Budget().MonthlyLimit)
	}
	if len(restored.Transactions()) != 0 || len(restored.SavingGoals()) != 0 {
		t.Errorf("expected no transactions and no goals")
	}
}

func TestTextSnapshot_GoalsWithoutTransactions(t *testing.T) {
	in := "100\n---\n---\nHouse | 90000 | 2030-01-01 | 1200.50\n\n"
	restored, err := ReadText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	goals := restored.SavingGoals()
	if len(goals) != 1 || goals[0].Name() != "House" || !goals[0].SavedAmount().Equal(dec("1200.5")) {
		t.Fatalf("unexpected goals %v", goals)
	}
}

func TestTextSnapshot_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line string
	}{
		{"empty", "", "empty file"},
		{"bad limit", "lots\n---\n---\n", "line 1"},
		{"missing first separator", "100\nIncome | Salary | 1 | 2023-10-10\n---\n", "line 2"},
		{"short transaction", "100\n---\nIncome | Salary | 1\n---\n", "line 3"},
		{"unknown kind", "100\n---\nTransfer | Salary | 1 | 2023-10-10\n---\n", "line 3"},
		{"bad amount", "100\n---\nIncome | Salary | one | 2023-10-10\n---\n", "line 3"},
		{"bad date", "100\n---\nIncome | Salary | 1 | 10/10/2023\n---\n", "line 3"},
		{"short goal", "100\n---\n---\nCar | 10 | 2024-01-01\n", "line 4"},
		{"missing goal separator", "100\n---\nIncome | Salary | 1 | 2023-10-10\n", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tt.in))
			if !errors.Is(err, ErrMalformedText) {
				t.Fatalf("expected ErrMalformedText, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q should mention %q", err, tt.line)
			}
		})
	}
}

func TestTextSnapshot_UnencodableField(t *testing.T) {
	tests := []struct {
		name  string
		goal  bool
		value string
	}{
		{"separator in category", false, "Food | Drinks"},
		{"newline in category", false, "Food\nDrinks"},
		{"empty category", false, ""},
		{"category ends with pipe", false, "x |"},
		{"category starts with pipe", false, "| x"},
		{"empty goal name", true, ""},
		{"goal name ends with pipe", true, "Car |"},
		{"goal name with leading space", true, " Car"},
		{"goal name with trailing space", true, "Car "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := New(dec("10"), WithOutput(&bytes.Buffer{}))
			var err error
			if tt.goal {
				_, err = ft.AddSavingGoal(tt.value, dec("10"), "2024-12-31")
			} else {
				_, err = ft.AddTransaction(model.KindExpense, tt.value, dec("5"), "2023-10-10", "")
			}
			if err != nil {
				t.Fatal(err)
			}

			err = ft.WriteText(&bytes.Buffer{})
			if !errors.Is(err, ErrUnencodableField) {
				t.Fatalf("expected ErrUnencodableField, got %v", err)
			}
		})
	}
}

func TestTextSnapshot_UnusualFieldsRoundTrip(t *testing.T) {
	ft := New(dec("10"), WithOutput(&bytes.Buffer{}))
	if _, err := ft.AddTransaction(model.KindExpense, " Coffee ", dec("5"), "2023-10-10", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := ft.AddTransaction(model.KindExpense, "|", dec("1"), "2023-10-11", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := ft.AddSavingGoal("Car|Bike", dec("10"), "2024-12-31"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ft.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	restored, err := ReadText(&buf, WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}

	txs := restored.Transactions()
	if len(txs) != 2 || txs[0].Category() != " Coffee " || txs[1].Category() != "|" {
		t.Fatalf("categories not preserved: %+v", txs)
	}
	if _, ok := restored.FindSavingGoal("Car|Bike"); !ok {
		t.Fatal("goal name not preserved")
	}
}
