package service

import (
	"context"
	"log/slog"

	"github.com/rizaldy/keuanganku/internal/calculator"
	"github.com/rizaldy/keuanganku/internal/models"
	"github.com/rizaldy/keuanganku/internal/storage"
)

// LedgerService orchestrates transaction operations for one authenticated
// user at a time. Validation happens here, before anything reaches storage.
type LedgerService struct {
	store  storage.LedgerStore
	logger *slog.Logger
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.LedgerStore, logger *slog.Logger) *LedgerService {
	return &LedgerService{store: store, logger: logger}
}

// Add validates and persists a transaction for the user, returning the
// assigned ID. An invalid submission is rejected with no mutation; the insert
// itself is a single atomic persistence call.
func (s *LedgerService) Add(ctx context.Context, userID int64, tx models.Transaction) (int64, error) {
	tx.UserID = userID
	if err := tx.Validate(); err != nil {
		s.logger.Warn("Transaction rejected", "user_id", userID, "error", err)
		return 0, err
	}

	if err := s.store.InsertTransaction(ctx, &tx); err != nil {
		s.logger.Error("Insert failed", "user_id", userID, "error", err)
		return 0, err
	}

	s.logger.Info("Transaction recorded",
		"user_id", userID,
		"transaction_id", tx.ID,
		"kind", tx.Kind,
		"account", tx.Account,
		"amount", tx.Amount,
	)
	return tx.ID, nil
}

// List returns the user's transactions, most recently inserted first.
func (s *LedgerService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		s.logger.Error("List failed", "user_id", userID, "error", err)
		return nil, err
	}
	return txs, nil
}

// Delete removes one of the user's transactions. Deleting an absent or
// foreign ID is a no-op, not an error.
func (s *LedgerService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.store.DeleteTransaction(ctx, userID, id); err != nil {
		s.logger.Error("Delete failed", "user_id", userID, "transaction_id", id, "error", err)
		return err
	}
	s.logger.Info("Transaction deleted", "user_id", userID, "transaction_id", id)
	return nil
}

// Balances recomputes the user's per-account and total balances from the full
// transaction set.
func (s *LedgerService) Balances(ctx context.Context, userID int64) (calculator.Balances, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		s.logger.Error("Balance query failed", "user_id", userID, "error", err)
		return calculator.Balances{}, err
	}
	return calculator.Sum(txs), nil
}
