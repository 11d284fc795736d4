// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/rizaldy/keuanganku/internal/models"
)

// UserStore defines the interface for user persistence operations.
// This abstraction keeps the auth layer independent of the storage backend.
type UserStore interface {
	// CreateUser persists a new user. The user.ID field is populated by the
	// store. Inserting a duplicate username is an error.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// LedgerStore defines the interface for transaction persistence. Every
// operation is scoped to one owning user.
type LedgerStore interface {
	// InsertTransaction persists a new transaction and populates tx.ID with
	// the freshly assigned identifier.
	InsertTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactions returns all transactions for the user, most recently
	// inserted first (descending ID). Empty slice when there are none. Each
	// call re-reads persisted state.
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)

	// DeleteTransaction removes the transaction if it exists and belongs to
	// the user; otherwise it is a no-op. Other users' rows are never touched.
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

// Store combines all storage capabilities and resource management.
type Store interface {
	UserStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}
