package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
)

// LedgerRepository implements port.Ledger over the balances table. The
// booking engine is not the only spender of a balance, so adjustments are
// single conditional UPDATE statements, never read-then-overwrite.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Balance returns the user's current balance.
func (r *LedgerRepository) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx,
		`SELECT balance FROM balances WHERE user_id = $1`, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrLedgerNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Debit atomically subtracts amount, guarded against going negative.
func (r *LedgerRepository) Debit(ctx context.Context, userID string, amount int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE balances SET balance = balance - $2, updated_at = now()
		 WHERE user_id = $1 AND balance >= $2`, userID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// distinguish a missing record from a concurrent overspend
		balance, err := r.Balance(ctx, userID)
		if err != nil {
			return err
		}
		return &domain.InsufficientFundsError{Required: amount, Available: balance}
	}
	return nil
}

// Credit atomically adds amount to an existing ledger record.
func (r *LedgerRepository) Credit(ctx context.Context, userID string, amount int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE balances SET balance = balance + $2, updated_at = now()
		 WHERE user_id = $1`, userID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}
	return nil
}
