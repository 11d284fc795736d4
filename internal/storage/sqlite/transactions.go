package sqlite

import (
	"context"
	"fmt"

	"github.com/rizaldy/keuanganku/internal/models"
)

// InsertTransaction persists a new transaction and populates tx.ID with the
// assigned identifier.
func (s *Store) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, date, description, kind, account, amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID, tx.Date, tx.Description, string(tx.Kind), string(tx.Account), tx.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transaction id: %w", err)
	}
	tx.ID = id

	return nil
}

// ListTransactions returns all transactions for the user, most recently
// inserted first.
func (s *Store) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, date, description, kind, account, amount
		 FROM transactions WHERE user_id = ? ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var kind, account string
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.Description, &kind, &account, &tx.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Kind = models.Kind(kind)
		tx.Account = models.Account(account)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txs, nil
}

// DeleteTransaction removes the transaction if it exists and belongs to the
// user. Deleting an absent or foreign ID is a no-op.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
