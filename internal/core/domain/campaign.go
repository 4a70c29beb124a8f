package domain

import "time"

// BudgetKind tells how a campaign budget is spent.
type BudgetKind string

const (
	BudgetTotal BudgetKind = "Total"
	BudgetDaily BudgetKind = "Daily"
)

// Budget is the structured budget of a campaign. Amount is expressed in
// currency units as entered in the editor.
type Budget struct {
	Amount float64    `json:"amount"`
	Kind   BudgetKind `json:"kind"`
}

// Campaign is the root of the aggregate edited by a session. It owns its
// ad groups, which own their creatives.
type Campaign struct {
	ID                ID         `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"` // active, paused, inactive
	BrandID           string     `json:"brand_id"`
	PlatformAccountID string     `json:"platform_account_id"`
	ModelID           *string    `json:"model_id"`
	Budget            Budget     `json:"budget"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Objective         string     `json:"objective"`
	AdGroups          []AdGroup  `json:"ad_groups"`
}

// NewCampaign returns a Pending campaign with the editor defaults.
func NewCampaign() *Campaign {
	return &Campaign{
		ID:       NewPendingID(),
		Status:   "active",
		Budget:   Budget{Kind: BudgetTotal},
		AdGroups: []AdGroup{},
	}
}

// AdGroup returns the ad group with the given id, or nil.
func (c *Campaign) AdGroup(id ID) *AdGroup {
	for i := range c.AdGroups {
		if c.AdGroups[i].ID == id {
			return &c.AdGroups[i]
		}
	}
	return nil
}

func (c *Campaign) adGroupIndex(id ID) int {
	for i := range c.AdGroups {
		if c.AdGroups[i].ID == id {
			return i
		}
	}
	return -1
}

// Creative returns the creative with the given id inside the given ad
// group, or nil when either cannot be resolved.
func (c *Campaign) Creative(adGroupID, id ID) *Creative {
	g := c.AdGroup(adGroupID)
	if g == nil {
		return nil
	}
	return g.Creative(id)
}

// Resolve reports whether the selection points at a node of the tree.
func (c *Campaign) Resolve(sel Selection) bool {
	switch sel.Kind {
	case KindCampaign:
		return sel.TargetID == c.ID
	case KindAdGroup:
		return c.AdGroup(sel.TargetID) != nil
	case KindCreative:
		return c.Creative(sel.ParentAdGroupID, sel.TargetID) != nil
	default:
		return false
	}
}

// RemoveAdGroup splices the ad group out of the campaign and returns it.
func (c *Campaign) RemoveAdGroup(id ID) (AdGroup, bool) {
	i := c.adGroupIndex(id)
	if i < 0 {
		return AdGroup{}, false
	}
	g := c.AdGroups[i]
	c.AdGroups = append(c.AdGroups[:i:i], c.AdGroups[i+1:]...)
	return g, true
}

// PendingCount returns how many nodes of the tree still carry a Pending id.
func (c *Campaign) PendingCount() int {
	n := 0
	if c.ID.IsPending() {
		n++
	}
	for _, g := range c.AdGroups {
		if g.ID.IsPending() {
			n++
		}
		for _, cr := range g.Creatives {
			if cr.ID.IsPending() {
				n++
			}
		}
	}
	return n
}

// AdGroup is a set of creatives inside a campaign.
type AdGroup struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	BrandID   *string    `json:"brand_id"`
	ModelID   *string    `json:"model_id"`
	Creatives []Creative `json:"creatives"`
}

// NewAdGroup returns a Pending ad group with the editor defaults.
func NewAdGroup() AdGroup {
	return AdGroup{
		ID:        NewPendingID(),
		Name:      "New Ad Group",
		Status:    "active",
		Creatives: []Creative{},
	}
}

// Creative returns the creative with the given id, or nil.
func (g *AdGroup) Creative(id ID) *Creative {
	for i := range g.Creatives {
		if g.Creatives[i].ID == id {
			return &g.Creatives[i]
		}
	}
	return nil
}

// RemoveCreative splices the creative out of the ad group and returns it.
func (g *AdGroup) RemoveCreative(id ID) (Creative, bool) {
	for i := range g.Creatives {
		if g.Creatives[i].ID == id {
			cr := g.Creatives[i]
			g.Creatives = append(g.Creatives[:i:i], g.Creatives[i+1:]...)
			return cr, true
		}
	}
	return Creative{}, false
}
