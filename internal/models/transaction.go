package models

import (
	"errors"
	"strings"
	"time"
)

// Kind is the direction of a transaction.
type Kind string

// Account is the money pool a transaction draws from or adds to.
type Account string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"

	AccountBank Account = "bank"
	AccountCash Account = "cash"
)

// DateLayout is the calendar-date format transactions are stored with.
// There is no time component.
const DateLayout = "2006-01-02"

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidAccount   = errors.New("invalid account")
	ErrInvalidDate      = errors.New("invalid date, want YYYY-MM-DD")
)

// Transaction is one income or expense entry in a user's ledger.
type Transaction struct {
	// ID is the unique identifier, assigned by the database. IDs increase
	// monotonically and are never reused after deletion.
	ID int64

	// UserID is the owning user.
	UserID int64

	// Date is the calendar date in DateLayout format.
	Date string

	// Description is free text; must be non-empty.
	Description string

	// Kind is income or expense.
	Kind Kind

	// Account is bank or cash.
	Account Account

	// Amount is the non-negative magnitude in whole currency units.
	// Direction comes from Kind, never from a sign.
	Amount int64
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Valid reports whether a is a known account.
func (a Account) Valid() bool {
	return a == AccountBank || a == AccountCash
}

// Validate checks a submission before it reaches storage. A failure means the
// transaction is rejected with no mutation.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if !t.Account.Valid() {
		return ErrInvalidAccount
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
