package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

const creativeColumns = `id::text, ad_group_id::text, name, type, status, titles, creative_urls, brand_id, model_id`

var _ port.CreativeService = (*CreativeRepository)(nil)

// CreativeRepository implements port.CreativeService using pgxpool for
// PostgreSQL.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

// Create inserts a creative under p.AdGroupID.
func (r *CreativeRepository) Create(ctx context.Context, p port.CreativePayload) (domain.Creative, error) {
	if !validKey(p.AdGroupID) || !validKey(p.CampaignID) {
		return domain.Creative{}, fmt.Errorf("insert creative: ad group %q: %w", p.AdGroupID, port.ErrNotFound)
	}
	row := r.pool.QueryRow(ctx, `INSERT INTO creatives
    (ad_group_id, campaign_id, name, type, status, titles, creative_urls, brand_id, model_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING `+creativeColumns,
		p.AdGroupID, p.CampaignID, p.Name, string(p.Type), p.Status,
		textArray(p.Titles), textArray(p.CreativeURLs), p.BrandID, p.ModelID)
	cr, err := scanCreative(row)
	if err != nil {
		return domain.Creative{}, fmt.Errorf("insert creative: %w", err)
	}
	return cr, nil
}

// Update overwrites the creative and moves it to p.AdGroupID.
func (r *CreativeRepository) Update(ctx context.Context, id string, p port.CreativePayload) (domain.Creative, error) {
	if !validKey(id) || !validKey(p.AdGroupID) || !validKey(p.CampaignID) {
		return domain.Creative{}, port.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `UPDATE creatives SET
    ad_group_id = $2, campaign_id = $3, name = $4, type = $5, status = $6,
    titles = $7, creative_urls = $8, brand_id = $9, model_id = $10, updated_at = now()
WHERE id = $1
RETURNING `+creativeColumns,
		id, p.AdGroupID, p.CampaignID, p.Name, string(p.Type), p.Status,
		textArray(p.Titles), textArray(p.CreativeURLs), p.BrandID, p.ModelID)
	cr, err := scanCreative(row)
	if err != nil {
		return domain.Creative{}, notFound(err)
	}
	return cr, nil
}

func (r *CreativeRepository) Delete(ctx context.Context, id string) error {
	if !validKey(id) {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM creatives WHERE id = $1`, id)
	return err
}

func (r *CreativeRepository) Get(ctx context.Context, id string) (domain.Creative, error) {
	if !validKey(id) {
		return domain.Creative{}, port.ErrNotFound
	}
	cr, err := scanCreative(r.pool.QueryRow(ctx, `SELECT `+creativeColumns+` FROM creatives WHERE id = $1`, id))
	if err != nil {
		return domain.Creative{}, notFound(err)
	}
	return cr, nil
}

// ListByParent returns the creatives of an ad group in creation order.
func (r *CreativeRepository) ListByParent(ctx context.Context, adGroupID string) ([]domain.Creative, error) {
	if !validKey(adGroupID) {
		return []domain.Creative{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+creativeColumns+`
FROM creatives WHERE ad_group_id = $1 ORDER BY seq`, adGroupID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		return scanCreative(row)
	})
}

func scanCreative(row pgx.Row) (domain.Creative, error) {
	var (
		cr                 domain.Creative
		id, adGroupID, typ string
	)
	err := row.Scan(
		&id,
		&adGroupID,
		&cr.Name,
		&typ,
		&cr.Status,
		&cr.Titles,
		&cr.CreativeURLs,
		&cr.BrandID,
		&cr.ModelID,
	)
	if err != nil {
		return domain.Creative{}, err
	}
	cr.ID = domain.SavedID(id)
	cr.ParentAdGroupID = domain.SavedID(adGroupID)
	cr.Type = domain.ParseCreativeType(typ)
	return cr, nil
}
