// Package saga runs an ordered list of (do, undo) steps with reverse-order
// compensation. It exists because booking state spans a relational store,
// an object store and a ledger with no shared transaction coordinator.
package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one compensable unit of work. Undo may be nil for steps that
// never need compensation (such as a final debit that only runs when
// everything before it succeeded).
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Run executes steps in order. On the first failure it compensates every
// already-applied step in reverse order and returns the original error
// wrapped with the failing step's name. Compensation is best effort: an
// undo failure is logged and never masks or delays the original error.
func Run(ctx context.Context, logger *slog.Logger, steps []Step) error {
	for i, st := range steps {
		if err := st.Do(ctx); err != nil {
			compensate(ctx, logger, steps[:i])
			return fmt.Errorf("%s: %w", st.Name, err)
		}
	}
	return nil
}

func compensate(ctx context.Context, logger *slog.Logger, applied []Step) {
	for i := len(applied) - 1; i >= 0; i-- {
		st := applied[i]
		if st.Undo == nil {
			continue
		}
		if err := st.Undo(ctx); err != nil {
			logger.Error("compensation failed",
				slog.String("step", st.Name),
				slog.Any("error", err))
		}
	}
}
