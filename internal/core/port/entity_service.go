package port

import (
	"context"
	"errors"
	"time"

	"campaign-editor/internal/core/domain"
)

// ErrNotFound is returned by Get when no entity has the given id.
var ErrNotFound = errors.New("entity not found")

// EntityService is the persistence boundary for one entity type of the
// campaign aggregate. It is an outbound port: the editor only needs Create
// to return the entity carrying its durable identifier, and Update and
// Delete to be addressable by that identifier. Delete of an unknown id is
// not an error.
type EntityService[P any, E any] interface {
	// Create persists a new entity and returns it with a Saved identifier.
	Create(ctx context.Context, payload P) (E, error)
	// Update overwrites the entity with the given id.
	Update(ctx context.Context, id string, payload P) (E, error)
	// Delete removes the entity with the given id.
	Delete(ctx context.Context, id string) error
	// Get returns the entity with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (E, error)
	// ListByParent returns the children of parentID in creation order.
	ListByParent(ctx context.Context, parentID string) ([]E, error)
}

type (
	CampaignService = EntityService[CampaignPayload, domain.Campaign]
	AdGroupService  = EntityService[AdGroupPayload, domain.AdGroup]
	CreativeService = EntityService[CreativePayload, domain.Creative]
)

// CampaignPayload is the body of a campaign create or update. Foreign keys
// are flattened to bare identifiers.
type CampaignPayload struct {
	Name              string        `json:"name" validate:"required"`
	Status            string        `json:"status"`
	BrandID           string        `json:"brand_id" validate:"required"`
	PlatformAccountID string        `json:"platform_account_id" validate:"required"`
	ModelID           *string       `json:"model_id"`
	Budget            domain.Budget `json:"budget"`
	StartDate         *time.Time    `json:"start_date"`
	EndDate           *time.Time    `json:"end_date"`
	Objective         string        `json:"objective"`
}

// AdGroupPayload is the body of an ad group create or update.
type AdGroupPayload struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	BrandID    *string `json:"brand_id"`
	ModelID    *string `json:"model_id"`
}

// CreativePayload is the body of a creative create or update.
type CreativePayload struct {
	AdGroupID    string              `json:"ad_group_id"`
	CampaignID   string              `json:"campaign_id"`
	Name         string              `json:"name"`
	Type         domain.CreativeType `json:"type" validate:"oneof=Image Video Carousel Text"`
	Status       string              `json:"status"`
	Titles       []string            `json:"titles"`
	CreativeURLs []string            `json:"creative_urls"`
	BrandID      *string             `json:"brand_id"`
	ModelID      *string             `json:"model_id"`
}
