package usecase

import (
	"io"
	"log/slog"
	"testing"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
	"campaign-editor/internal/core/port/mocks"
)

type (
	campaignMock = mocks.MockEntityService[port.CampaignPayload, domain.Campaign]
	adGroupMock  = mocks.MockEntityService[port.AdGroupPayload, domain.AdGroup]
	creativeMock = mocks.MockEntityService[port.CreativePayload, domain.Creative]
)

type testBackend struct {
	campaigns *campaignMock
	adGroups  *adGroupMock
	creatives *creativeMock
	calls     []string
}

func newTestBackend(t *testing.T) *testBackend {
	return &testBackend{
		campaigns: mocks.NewMockEntityService[port.CampaignPayload, domain.Campaign](t),
		adGroups:  mocks.NewMockEntityService[port.AdGroupPayload, domain.AdGroup](t),
		creatives: mocks.NewMockEntityService[port.CreativePayload, domain.Creative](t),
	}
}

func (b *testBackend) services() Services {
	return Services{Campaigns: b.campaigns, AdGroups: b.adGroups, Creatives: b.creatives}
}

func (b *testBackend) record(call string) {
	b.calls = append(b.calls, call)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// savedTree returns a persisted campaign with one ad group holding one
// creative.
func savedTree() *domain.Campaign {
	g1 := domain.SavedID("g1")
	return &domain.Campaign{
		ID:                domain.SavedID("c1"),
		Name:              "Spring Sale",
		Status:            "active",
		BrandID:           "brand-1",
		PlatformAccountID: "acc-1",
		Budget:            domain.Budget{Amount: 1500, Kind: domain.BudgetTotal},
		AdGroups: []domain.AdGroup{{
			ID:     g1,
			Name:   "Retargeting",
			Status: "active",
			Creatives: []domain.Creative{{
				ID:              domain.SavedID("cr1"),
				Name:            "Banner",
				Type:            domain.CreativeImage,
				Status:          "active",
				Titles:          []string{"Banner"},
				CreativeURLs:    []string{"https://cdn.example.com/banner.png"},
				ParentAdGroupID: g1,
			}},
		}},
	}
}

// campaignForm renders a complete campaign panel for the campaign id.
func campaignForm(id domain.ID, name string) domain.Form {
	return domain.Form{Kind: domain.KindCampaign, TargetID: id, Campaign: &domain.CampaignForm{
		Name:              name,
		Status:            "active",
		BrandID:           "brand-1",
		PlatformAccountID: "acc-1",
		Budget:            "250.5",
		BudgetKind:        "Total",
	}}
}
