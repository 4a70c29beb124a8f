package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

var (
	_ port.EditorUseCase = (*EditorUseCase)(nil)
	_ port.EditorSession = (*Session)(nil)
)

// Services groups the entity services a session persists through.
type Services struct {
	Campaigns port.CampaignService
	AdGroups  port.AdGroupService
	Creatives port.CreativeService
}

// EditorUseCase opens editor sessions over campaign trees. It implements
// port.EditorUseCase.
type EditorUseCase struct {
	svc    Services
	logger *slog.Logger
}

// NewEditorUseCase creates a usecase persisting through svc.
func NewEditorUseCase(svc Services, logger *slog.Logger) *EditorUseCase {
	return &EditorUseCase{svc: svc, logger: logger}
}

// NewCampaign starts a session on a fresh Pending campaign with the
// campaign panel selected.
func (u *EditorUseCase) NewCampaign(_ context.Context) (port.EditorSession, error) {
	s := newSession(domain.NewCampaign(), u.svc, u.logger)
	s.logger.Info("editor session started", slog.Bool("new_campaign", true))
	return s, nil
}

// OpenCampaign loads the campaign, its ad groups and their creatives and
// starts a session on the assembled tree with the campaign panel selected.
func (u *EditorUseCase) OpenCampaign(ctx context.Context, campaignID string) (port.EditorSession, error) {
	tree, err := u.load(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	s := newSession(tree, u.svc, u.logger)
	s.logger.Info("editor session started",
		slog.String("campaign_id", campaignID),
		slog.Int("ad_groups", len(tree.AdGroups)),
	)
	return s, nil
}

func (u *EditorUseCase) load(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := u.svc.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", campaignID, err)
	}
	// The budget select always holds a kind; a tree without one would look
	// edited as soon as the campaign panel is flushed.
	if c.Budget.Kind == "" {
		c.Budget.Kind = domain.BudgetTotal
	}
	groups, err := u.svc.AdGroups.ListByParent(ctx, c.ID.Value())
	if err != nil {
		return nil, fmt.Errorf("list ad groups of campaign %s: %w", campaignID, err)
	}

	// Creatives of different ad groups are independent; fetch them together.
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range groups {
		eg.Go(func() error {
			g := &groups[i]
			creatives, err := u.svc.Creatives.ListByParent(egCtx, g.ID.Value())
			if err != nil {
				return fmt.Errorf("list creatives of ad group %s: %w", g.ID, err)
			}
			if creatives == nil {
				creatives = []domain.Creative{}
			}
			for j := range creatives {
				cr := &creatives[j]
				cr.ParentAdGroupID = g.ID
				// Stored the way the creative panel renders it: a known type,
				// exactly one title and one URL.
				cr.Type = domain.ParseCreativeType(string(cr.Type))
				if len(cr.Titles) == 0 {
					cr.Titles = []string{""}
				}
				if len(cr.CreativeURLs) == 0 {
					cr.CreativeURLs = []string{""}
				}
			}
			g.Creatives = creatives
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	if groups == nil {
		groups = []domain.AdGroup{}
	}
	c.AdGroups = groups
	return &c, nil
}
