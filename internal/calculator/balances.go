// Package calculator derives balances from a user's transaction set.
package calculator

import "github.com/rizaldy/keuanganku/internal/models"

// Balances holds the derived balance per account plus the total.
// Values are signed: overspending an account drives it negative.
type Balances struct {
	Bank  int64
	Cash  int64
	Total int64
}

// Sum folds a transaction set into balances.
//
// The fold is commutative and associative: income adds the amount to the
// transaction's account, expense subtracts it, so input order never affects
// the result. Balances are always recomputed from the full set on demand;
// there is no cached balance state to drift.
func Sum(txs []models.Transaction) Balances {
	var b Balances
	for _, tx := range txs {
		amount := tx.Amount
		if tx.Kind == models.KindExpense {
			amount = -amount
		}
		switch tx.Account {
		case models.AccountBank:
			b.Bank += amount
		case models.AccountCash:
			b.Cash += amount
		}
	}
	b.Total = b.Bank + b.Cash
	return b
}
