package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
)

// Seed inserts demo data into the adboard database: funded balances, a
// few campaigns across all moderation states and some occupied days.
// Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	owners := []string{"alice", "bob", "carol"}
	for _, owner := range owners {
		_, err := pool.Exec(ctx, `INSERT INTO balances (user_id, balance, updated_at)
VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`, owner, int64(10000))
		if err != nil {
			return err
		}
	}

	statuses := []domain.ModerationStatus{
		domain.StatusApproved,
		domain.StatusPending,
		domain.StatusRejected,
	}
	ids := make([]int64, 0, len(owners))
	for i, owner := range owners {
		hash := domain.ContentHash([]byte(uuid.NewString()))
		var id int64
		err := pool.QueryRow(ctx, `INSERT INTO campaigns (owner_id, content_hash, status, created_at, updated_at)
VALUES ($1, $2, $3, now(), now()) RETURNING id`, owner, hash, statuses[i%len(statuses)]).Scan(&id)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	// occupy the first three locations for today and tomorrow
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for day := 0; day < 2; day++ {
		date := today.AddDate(0, 0, day)
		for i, id := range ids {
			col := fmt.Sprintf("location_%d", i+1)
			_, err := pool.Exec(ctx, fmt.Sprintf(`INSERT INTO days (date, %[1]s) VALUES ($1, $2)
ON CONFLICT (date) DO UPDATE SET %[1]s = EXCLUDED.%[1]s WHERE days.%[1]s IS NULL`, col), date, id)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
