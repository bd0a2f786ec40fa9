package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a pending campaign and returns its assigned id.
func (r *CampaignRepository) Create(ctx context.Context, ownerID, contentHash string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (owner_id, content_hash, status, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now()) RETURNING id`,
		ownerID, contentHash, domain.StatusPending).Scan(&id)
	return id, err
}

// Delete removes a campaign row. Compensation path only.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// Get returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, content_hash, status, created_at, updated_at
		 FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.OwnerID, &c.ContentHash, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetMany resolves a batch of campaign ids. Missing ids are absent from
// the result.
func (r *CampaignRepository) GetMany(ctx context.Context, ids []int64) (map[int64]domain.Campaign, error) {
	out := make(map[int64]domain.Campaign, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, content_hash, status, created_at, updated_at
		 FROM campaigns WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.OwnerID, &c.ContentHash, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		out[c.ID] = c
	}
	return out, nil
}

// UpdateStatus applies a moderation decision to a campaign.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status domain.ModerationStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}
