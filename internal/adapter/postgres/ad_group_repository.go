package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

const adGroupColumns = `id::text, name, status, brand_id, model_id`

var _ port.AdGroupService = (*AdGroupRepository)(nil)

// AdGroupRepository implements port.AdGroupService using pgxpool for
// PostgreSQL.
type AdGroupRepository struct {
	pool *pgxpool.Pool
}

// NewAdGroupRepository returns a new repository instance.
func NewAdGroupRepository(pool *pgxpool.Pool) *AdGroupRepository {
	return &AdGroupRepository{pool: pool}
}

// Create inserts an ad group under p.CampaignID.
func (r *AdGroupRepository) Create(ctx context.Context, p port.AdGroupPayload) (domain.AdGroup, error) {
	if !validKey(p.CampaignID) {
		return domain.AdGroup{}, fmt.Errorf("insert ad group: campaign %q: %w", p.CampaignID, port.ErrNotFound)
	}
	row := r.pool.QueryRow(ctx, `INSERT INTO ad_groups (campaign_id, name, status, brand_id, model_id)
VALUES ($1,$2,$3,$4,$5)
RETURNING `+adGroupColumns,
		p.CampaignID, p.Name, p.Status, p.BrandID, p.ModelID)
	g, err := scanAdGroup(row)
	if err != nil {
		return domain.AdGroup{}, fmt.Errorf("insert ad group: %w", err)
	}
	return g, nil
}

// Update overwrites the ad group and moves it to p.CampaignID.
func (r *AdGroupRepository) Update(ctx context.Context, id string, p port.AdGroupPayload) (domain.AdGroup, error) {
	if !validKey(id) || !validKey(p.CampaignID) {
		return domain.AdGroup{}, port.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `UPDATE ad_groups SET
    campaign_id = $2, name = $3, status = $4, brand_id = $5, model_id = $6, updated_at = now()
WHERE id = $1
RETURNING `+adGroupColumns,
		id, p.CampaignID, p.Name, p.Status, p.BrandID, p.ModelID)
	g, err := scanAdGroup(row)
	if err != nil {
		return domain.AdGroup{}, notFound(err)
	}
	return g, nil
}

// Delete removes the ad group; its creatives go with it.
func (r *AdGroupRepository) Delete(ctx context.Context, id string) error {
	if !validKey(id) {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM ad_groups WHERE id = $1`, id)
	return err
}

func (r *AdGroupRepository) Get(ctx context.Context, id string) (domain.AdGroup, error) {
	if !validKey(id) {
		return domain.AdGroup{}, port.ErrNotFound
	}
	g, err := scanAdGroup(r.pool.QueryRow(ctx, `SELECT `+adGroupColumns+` FROM ad_groups WHERE id = $1`, id))
	if err != nil {
		return domain.AdGroup{}, notFound(err)
	}
	return g, nil
}

// ListByParent returns the ad groups of a campaign in creation order.
func (r *AdGroupRepository) ListByParent(ctx context.Context, campaignID string) ([]domain.AdGroup, error) {
	if !validKey(campaignID) {
		return []domain.AdGroup{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+adGroupColumns+`
FROM ad_groups WHERE campaign_id = $1 ORDER BY seq`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		return scanAdGroup(row)
	})
}

func scanAdGroup(row pgx.Row) (domain.AdGroup, error) {
	var (
		g  domain.AdGroup
		id string
	)
	if err := row.Scan(&id, &g.Name, &g.Status, &g.BrandID, &g.ModelID); err != nil {
		return domain.AdGroup{}, err
	}
	g.ID = domain.SavedID(id)
	g.Creatives = []domain.Creative{}
	return g, nil
}
