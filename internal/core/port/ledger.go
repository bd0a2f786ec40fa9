package port

import "context"

// Ledger is the per-user balance collaborator. This engine is not the
// only spender of a balance, so Debit and Credit must be implemented as
// atomic relative adjustments, never read-then-overwrite.
type Ledger interface {
	// Balance returns the user's current balance, or
	// domain.ErrLedgerNotFound when the user has no ledger record.
	Balance(ctx context.Context, userID string) (int64, error)

	// Debit atomically subtracts amount from the user's balance. Fails
	// with domain.InsufficientFundsError when the balance would go
	// negative, or domain.ErrLedgerNotFound for unknown users.
	Debit(ctx context.Context, userID string, amount int64) error

	// Credit atomically adds amount to the user's balance. Used by refund
	// paths outside this engine.
	Credit(ctx context.Context, userID string, amount int64) error
}
