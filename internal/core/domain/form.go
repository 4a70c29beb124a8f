package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Form is the state of the editor panel currently rendered by the UI. Kind,
// TargetID and ParentAdGroupID name the node the panel was rendered for;
// the form is only ever written to that node. Only the member matching Kind
// is read. Every field holds the raw value of the corresponding input, so
// an empty string means the input is empty.
type Form struct {
	Kind            NodeKind      `json:"kind"`
	TargetID        ID            `json:"target_id"`
	ParentAdGroupID ID            `json:"parent_ad_group_id,omitzero"`
	Campaign        *CampaignForm `json:"campaign,omitempty"`
	AdGroup         *AdGroupForm  `json:"ad_group,omitempty"`
	Creative        *CreativeForm `json:"creative,omitempty"`
}

// Selection returns the node the form was rendered for.
func (f Form) Selection() Selection {
	return Selection{Kind: f.Kind, TargetID: f.TargetID, ParentAdGroupID: f.ParentAdGroupID}
}

// Rebind rewrites references to old with resolved, like Selection.Rebind.
func (f Form) Rebind(old, resolved ID) Form {
	sel := f.Selection().Rebind(old, resolved)
	f.TargetID, f.ParentAdGroupID = sel.TargetID, sel.ParentAdGroupID
	return f
}

type CampaignForm struct {
	Name              string `json:"name"`
	Status            string `json:"status"`
	BrandID           string `json:"brand_id"`
	PlatformAccountID string `json:"platform_account_id"`
	ModelID           string `json:"model_id"`
	Budget            string `json:"budget"`
	BudgetKind        string `json:"budget_kind"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Objective         string `json:"objective"`
}

type AdGroupForm struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	BrandID string `json:"brand_id"`
	ModelID string `json:"model_id"`
}

type CreativeForm struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	BrandID string `json:"brand_id"`
	ModelID string `json:"model_id"`
}

// ApplyForm writes the form values onto the node addressed by sel and
// returns the resulting tree. The input tree is never modified. A form that
// was rendered for another node than sel is ignored and tree is returned as
// is. Applying the same form twice yields equal trees.
func ApplyForm(form Form, tree *Campaign, sel Selection) (*Campaign, error) {
	if tree == nil || form.Selection() != sel {
		return tree, nil
	}

	out := tree.Clone()
	switch sel.Kind {
	case KindCampaign:
		if form.Campaign == nil {
			return tree, nil
		}
		if sel.TargetID != out.ID {
			return nil, &StructuralIntegrityError{Selection: sel, Reason: "campaign not in tree"}
		}
		applyCampaignForm(*form.Campaign, out)
	case KindAdGroup:
		if form.AdGroup == nil {
			return tree, nil
		}
		g := out.AdGroup(sel.TargetID)
		if g == nil {
			return nil, &StructuralIntegrityError{Selection: sel, Reason: "ad group not in tree"}
		}
		applyAdGroupForm(*form.AdGroup, g)
	case KindCreative:
		if form.Creative == nil {
			return tree, nil
		}
		cr := out.Creative(sel.ParentAdGroupID, sel.TargetID)
		if cr == nil {
			return nil, &StructuralIntegrityError{Selection: sel, Reason: "creative not in tree"}
		}
		applyCreativeForm(*form.Creative, cr)
	default:
		return tree, nil
	}
	return out, nil
}

func applyCampaignForm(f CampaignForm, c *Campaign) {
	c.Name = f.Name
	c.Status = f.Status

	// Brand and account selects are repopulated asynchronously and may be
	// transiently empty; an empty value never overwrites them.
	if f.BrandID != "" {
		c.BrandID = f.BrandID
	}
	if f.PlatformAccountID != "" {
		c.PlatformAccountID = f.PlatformAccountID
	}
	// The model select is the only relation an empty value clears.
	c.ModelID = optional(f.ModelID)

	c.Budget = Budget{Amount: parseAmount(f.Budget), Kind: parseBudgetKind(f.BudgetKind)}
	c.StartDate = parseDate(f.StartDate)
	c.EndDate = parseDate(f.EndDate)
	c.Objective = f.Objective
}

func applyAdGroupForm(f AdGroupForm, g *AdGroup) {
	g.Name = f.Name
	g.Status = f.Status
	g.BrandID = optional(f.BrandID)
	g.ModelID = optional(f.ModelID)
}

func applyCreativeForm(f CreativeForm, cr *Creative) {
	cr.Type = ParseCreativeType(f.Type)
	cr.Status = f.Status
	cr.Titles = []string{f.Title}
	cr.CreativeURLs = []string{f.URL}
	// The title doubles as the display name. A blank title leaves the name
	// as it is; this panel never blanks a creative name.
	if f.Title != "" {
		cr.Name = f.Title
	}
	cr.BrandID = optional(f.BrandID)
	cr.ModelID = optional(f.ModelID)
}

// FormFor renders the panel state of the selected node from the tree. It
// returns false when the selection does not resolve.
func FormFor(tree *Campaign, sel Selection) (Form, bool) {
	if tree == nil {
		return Form{}, false
	}
	switch sel.Kind {
	case KindCampaign:
		if sel.TargetID != tree.ID {
			return Form{}, false
		}
		return Form{Kind: KindCampaign, TargetID: tree.ID, Campaign: &CampaignForm{
			Name:              tree.Name,
			Status:            tree.Status,
			BrandID:           tree.BrandID,
			PlatformAccountID: tree.PlatformAccountID,
			ModelID:           deref(tree.ModelID),
			Budget:            strconv.FormatFloat(tree.Budget.Amount, 'f', -1, 64),
			BudgetKind:        string(tree.Budget.Kind),
			StartDate:         formatDate(tree.StartDate),
			EndDate:           formatDate(tree.EndDate),
			Objective:         tree.Objective,
		}}, true
	case KindAdGroup:
		g := tree.AdGroup(sel.TargetID)
		if g == nil {
			return Form{}, false
		}
		return Form{Kind: KindAdGroup, TargetID: g.ID, AdGroup: &AdGroupForm{
			Name:    g.Name,
			Status:  g.Status,
			BrandID: deref(g.BrandID),
			ModelID: deref(g.ModelID),
		}}, true
	case KindCreative:
		cr := tree.Creative(sel.ParentAdGroupID, sel.TargetID)
		if cr == nil {
			return Form{}, false
		}
		return Form{Kind: KindCreative, TargetID: cr.ID, ParentAdGroupID: sel.ParentAdGroupID, Creative: &CreativeForm{
			Type:    string(cr.Type),
			Status:  cr.Status,
			Title:   cr.Title(),
			URL:     cr.URL(),
			BrandID: deref(cr.BrandID),
			ModelID: deref(cr.ModelID),
		}}, true
	default:
		return Form{}, false
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseAmount returns 0 for missing, unparseable or non-finite input.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseBudgetKind(s string) BudgetKind {
	if BudgetKind(s) == BudgetDaily {
		return BudgetDaily
	}
	return BudgetTotal
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
