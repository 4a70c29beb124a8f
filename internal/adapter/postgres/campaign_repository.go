package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

const campaignColumns = `id::text, name, status, brand_id, platform_account_id, model_id,
    budget_amount, budget_kind, start_date, end_date, objective`

var _ port.CampaignService = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignService using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a campaign and returns it with its generated id.
func (r *CampaignRepository) Create(ctx context.Context, p port.CampaignPayload) (domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (name, status, brand_id, platform_account_id, model_id, budget_amount, budget_kind, start_date, end_date, objective)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING `+campaignColumns,
		p.Name, p.Status, p.BrandID, p.PlatformAccountID, p.ModelID,
		p.Budget.Amount, budgetKind(p.Budget.Kind), p.StartDate, p.EndDate, p.Objective)
	c, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("insert campaign: %w", err)
	}
	return c, nil
}

// Update overwrites every editable column of the campaign.
func (r *CampaignRepository) Update(ctx context.Context, id string, p port.CampaignPayload) (domain.Campaign, error) {
	if !validKey(id) {
		return domain.Campaign{}, port.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET
    name = $2, status = $3, brand_id = $4, platform_account_id = $5, model_id = $6,
    budget_amount = $7, budget_kind = $8, start_date = $9, end_date = $10, objective = $11,
    updated_at = now()
WHERE id = $1
RETURNING `+campaignColumns,
		id, p.Name, p.Status, p.BrandID, p.PlatformAccountID, p.ModelID,
		p.Budget.Amount, budgetKind(p.Budget.Kind), p.StartDate, p.EndDate, p.Objective)
	c, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, notFound(err)
	}
	return c, nil
}

// Delete removes the campaign together with its ad groups and creatives.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	if !validKey(id) {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// Get returns a campaign by id without its children.
func (r *CampaignRepository) Get(ctx context.Context, id string) (domain.Campaign, error) {
	if !validKey(id) {
		return domain.Campaign{}, port.ErrNotFound
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return domain.Campaign{}, notFound(err)
	}
	return c, nil
}

// ListByParent returns the campaigns of a brand, oldest first.
func (r *CampaignRepository) ListByParent(ctx context.Context, brandID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
FROM campaigns WHERE brand_id = $1 ORDER BY created_at, id`, brandID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		id, kind string
	)
	err := row.Scan(
		&id,
		&c.Name,
		&c.Status,
		&c.BrandID,
		&c.PlatformAccountID,
		&c.ModelID,
		&c.Budget.Amount,
		&kind,
		&c.StartDate,
		&c.EndDate,
		&c.Objective,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.ID = domain.SavedID(id)
	c.Budget.Kind = domain.BudgetKind(kind)
	c.AdGroups = []domain.AdGroup{}
	return c, nil
}

func budgetKind(k domain.BudgetKind) string {
	if k == domain.BudgetDaily {
		return string(domain.BudgetDaily)
	}
	return string(domain.BudgetTotal)
}
