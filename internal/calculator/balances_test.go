package calculator

import (
	"testing"

	"github.com/rizaldy/keuanganku/internal/models"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		txs  []models.Transaction
		want Balances
	}{
		{
			name: "empty ledger is all zeros",
			txs:  nil,
			want: Balances{Bank: 0, Cash: 0, Total: 0},
		},
		{
			name: "income bank then expense cash",
			txs: []models.Transaction{
				{Kind: models.KindIncome, Account: models.AccountBank, Amount: 500},
				{Kind: models.KindExpense, Account: models.AccountCash, Amount: 200},
			},
			want: Balances{Bank: 500, Cash: -200, Total: 300},
		},
		{
			name: "expense alone goes negative, no clamping",
			txs: []models.Transaction{
				{Kind: models.KindExpense, Account: models.AccountBank, Amount: 750},
			},
			want: Balances{Bank: -750, Cash: 0, Total: -750},
		},
		{
			name: "income and expense on the same account cancel",
			txs: []models.Transaction{
				{Kind: models.KindIncome, Account: models.AccountCash, Amount: 300},
				{Kind: models.KindExpense, Account: models.AccountCash, Amount: 300},
			},
			want: Balances{Bank: 0, Cash: 0, Total: 0},
		},
		{
			name: "mixed accounts accumulate independently",
			txs: []models.Transaction{
				{Kind: models.KindIncome, Account: models.AccountBank, Amount: 1000},
				{Kind: models.KindIncome, Account: models.AccountCash, Amount: 50},
				{Kind: models.KindExpense, Account: models.AccountBank, Amount: 400},
				{Kind: models.KindExpense, Account: models.AccountCash, Amount: 75},
			},
			want: Balances{Bank: 600, Cash: -25, Total: 575},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.txs)
			if got != tt.want {
				t.Errorf("Sum() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSumOrderIndependent(t *testing.T) {
	txs := []models.Transaction{
		{Kind: models.KindIncome, Account: models.AccountBank, Amount: 500},
		{Kind: models.KindExpense, Account: models.AccountCash, Amount: 200},
		{Kind: models.KindIncome, Account: models.AccountCash, Amount: 120},
		{Kind: models.KindExpense, Account: models.AccountBank, Amount: 30},
	}

	want := Sum(txs)
	for _, perm := range permutations(len(txs)) {
		shuffled := make([]models.Transaction, len(txs))
		for i, j := range perm {
			shuffled[i] = txs[j]
		}
		if got := Sum(shuffled); got != want {
			t.Errorf("Sum(%v) = %+v, want %+v", perm, got, want)
		}
	}
}

// permutations returns every ordering of the indices 0..n-1.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]int, n)
			copy(perm, idx)
			out = append(out, perm)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				idx[i], idx[k-1] = idx[k-1], idx[i]
			} else {
				idx[0], idx[k-1] = idx[k-1], idx[0]
			}
		}
	}
	generate(n)
	return out
}
