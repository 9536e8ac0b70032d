package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustTx(t *testing.T, kind Kind, amount string) *Transaction {
	t.Helper()
	tx, err := NewTransaction(kind, "test", decimal.RequireFromString(amount), "2023-10-01", "")
	if err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestBudget_Remaining(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		txs   []struct {
			kind   Kind
			amount string
		}
		want string
	}{
		{
			name:  "no transactions",
			limit: "5000",
			want:  "5000",
		},
		{
			name:  "income ignored",
			limit: "5000",
			txs: []struct {
				kind   Kind
				amount string
			}{{KindIncome, "3000"}, {KindExpense, "150"}, {KindExpense, "1000"}},
			want: "3850",
		},
		{
			name:  "goes negative",
			limit: "100",
			txs: []struct {
				kind   Kind
				amount string
			}{{KindExpense, "99.99"}, {KindExpense, "0.02"}},
			want: "-0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []*Transaction
			for _, tx := range tt.txs {
				txs = append(txs, mustTx(t, tx.kind, tx.amount))
			}
			got := NewBudget(decimal.RequireFromString(tt.limit)).Remaining(txs)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Remaining() = %s, want %s", got, tt.want)
			}
		})
	}
}
