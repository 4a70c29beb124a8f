package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func testTree() *Campaign {
	g := SavedID("g1")
	return &Campaign{
		ID:                SavedID("c1"),
		Name:              "Spring Sale",
		Status:            "active",
		BrandID:           "brand-1",
		PlatformAccountID: "acc-1",
		ModelID:           ptr("model-1"),
		Budget:            Budget{Amount: 100, Kind: BudgetDaily},
		AdGroups: []AdGroup{{
			ID:      g,
			Name:    "Retargeting",
			Status:  "active",
			BrandID: ptr("brand-1"),
			Creatives: []Creative{{
				ID:              SavedID("cr1"),
				Name:            "Banner",
				Type:            CreativeVideo,
				Status:          "active",
				Titles:          []string{"Banner"},
				CreativeURLs:    []string{"https://cdn.example.com/v.mp4"},
				ParentAdGroupID: g,
			}},
		}},
	}
}

func TestApplyFormCampaign(t *testing.T) {
	tests := []struct {
		name  string
		form  CampaignForm
		check func(t *testing.T, c *Campaign)
	}{
		{
			name: "empty brand and account keep previous values",
			form: CampaignForm{Name: "Spring Sale", Budget: "100", BudgetKind: "Daily", ModelID: "model-1"},
			check: func(t *testing.T, c *Campaign) {
				if c.BrandID != "brand-1" || c.PlatformAccountID != "acc-1" {
					t.Fatalf("brand/account overwritten: %q %q", c.BrandID, c.PlatformAccountID)
				}
			},
		},
		{
			name: "empty model clears it",
			form: CampaignForm{Name: "Spring Sale", BrandID: "brand-1", PlatformAccountID: "acc-1"},
			check: func(t *testing.T, c *Campaign) {
				if c.ModelID != nil {
					t.Fatalf("expected model to be cleared, got %q", *c.ModelID)
				}
			},
		},
		{
			name: "unparseable budget becomes zero",
			form: CampaignForm{Budget: "12,50", BudgetKind: "Daily"},
			check: func(t *testing.T, c *Campaign) {
				if c.Budget != (Budget{Amount: 0, Kind: BudgetDaily}) {
					t.Fatalf("unexpected budget %+v", c.Budget)
				}
			},
		},
		{
			name: "non-finite budget becomes zero and kind defaults to total",
			form: CampaignForm{Budget: "NaN"},
			check: func(t *testing.T, c *Campaign) {
				if c.Budget != (Budget{Amount: 0, Kind: BudgetTotal}) {
					t.Fatalf("unexpected budget %+v", c.Budget)
				}
			},
		},
		{
			name: "dates parsed as calendar days",
			form: CampaignForm{StartDate: "2025-03-01", EndDate: "31/03/2025"},
			check: func(t *testing.T, c *Campaign) {
				want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
				if c.StartDate == nil || !c.StartDate.Equal(want) {
					t.Fatalf("unexpected start date %v", c.StartDate)
				}
				if c.EndDate != nil {
					t.Fatalf("expected invalid end date to be dropped, got %v", c.EndDate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testTree()
			sel := SelectCampaign(tree.ID)
			got, err := ApplyForm(Form{Kind: KindCampaign, TargetID: tree.ID, Campaign: &tt.form}, tree, sel)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
			if !tree.Equal(testTree()) {
				t.Fatal("input tree was modified")
			}
		})
	}
}

func TestApplyFormAdGroupClearsRelations(t *testing.T) {
	tree := testTree()
	form := Form{Kind: KindAdGroup, TargetID: SavedID("g1"), AdGroup: &AdGroupForm{Name: "Lookalike", Status: "paused"}}

	got, err := ApplyForm(form, tree, SelectAdGroup(SavedID("g1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := got.AdGroup(SavedID("g1"))
	if g.Name != "Lookalike" || g.Status != "paused" {
		t.Fatalf("unexpected ad group %+v", g)
	}
	if g.BrandID != nil {
		t.Fatalf("expected brand to be cleared, got %q", *g.BrandID)
	}
}

func TestApplyFormCreative(t *testing.T) {
	tree := testTree()
	sel := SelectCreative(SavedID("cr1"), SavedID("g1"))

	got, err := ApplyForm(Form{Kind: KindCreative, TargetID: sel.TargetID, ParentAdGroupID: sel.ParentAdGroupID, Creative: &CreativeForm{
		Type:   "Hologram",
		Status: "paused",
		Title:  "Spring banner",
		URL:    "https://cdn.example.com/b.png",
	}}, tree, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Creative{
		ID:              SavedID("cr1"),
		Name:            "Spring banner",
		Type:            CreativeImage,
		Status:          "paused",
		Titles:          []string{"Spring banner"},
		CreativeURLs:    []string{"https://cdn.example.com/b.png"},
		ParentAdGroupID: SavedID("g1"),
	}
	if diff := cmp.Diff(want, *got.Creative(SavedID("g1"), SavedID("cr1")), cmp.AllowUnexported(ID{})); diff != "" {
		t.Errorf("creative mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFormBlankTitleKeepsName(t *testing.T) {
	tree := testTree()
	sel := SelectCreative(SavedID("cr1"), SavedID("g1"))

	form := Form{Kind: KindCreative, TargetID: sel.TargetID, ParentAdGroupID: sel.ParentAdGroupID, Creative: &CreativeForm{Type: "Video"}}
	got, err := ApplyForm(form, tree, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cr := got.Creative(SavedID("g1"), SavedID("cr1"))
	if cr.Name != "Banner" {
		t.Fatalf("expected name to be kept, got %q", cr.Name)
	}
	if cr.Title() != "" {
		t.Fatalf("expected blank title, got %q", cr.Title())
	}
}

func TestApplyFormIsIdempotent(t *testing.T) {
	tree := testTree()
	forms := []struct {
		form Form
		sel  Selection
	}{
		{
			Form{Kind: KindCampaign, TargetID: SavedID("c1"), Campaign: &CampaignForm{Name: "X", Budget: "7.25", StartDate: "2025-01-02"}},
			SelectCampaign(SavedID("c1")),
		},
		{
			Form{Kind: KindAdGroup, TargetID: SavedID("g1"), AdGroup: &AdGroupForm{Name: "Y", ModelID: "m"}},
			SelectAdGroup(SavedID("g1")),
		},
		{
			Form{Kind: KindCreative, TargetID: SavedID("cr1"), ParentAdGroupID: SavedID("g1"), Creative: &CreativeForm{Type: "Text", Title: "Z"}},
			SelectCreative(SavedID("cr1"), SavedID("g1")),
		},
	}

	for _, f := range forms {
		once, err := ApplyForm(f.form, tree, f.sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		twice, err := ApplyForm(f.form, once, f.sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !once.Equal(twice) {
			t.Fatalf("%s form is not idempotent", f.sel.Kind)
		}
	}
}

func TestApplyFormKindMismatchIsIgnored(t *testing.T) {
	tree := testTree()
	form := Form{Kind: KindCampaign, TargetID: SavedID("c1"), Campaign: &CampaignForm{Name: "ignored"}}

	got, err := ApplyForm(form, tree, SelectAdGroup(SavedID("g1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Spring Sale" {
		t.Fatalf("form of another kind was applied")
	}
}

func TestApplyFormOtherTargetIsIgnored(t *testing.T) {
	tree := testTree()
	tree.AdGroups[0].Creatives = append(tree.AdGroups[0].Creatives, Creative{
		ID:              SavedID("cr2"),
		Name:            "Other",
		Type:            CreativeImage,
		Titles:          []string{"Other"},
		CreativeURLs:    []string{"u2"},
		ParentAdGroupID: SavedID("g1"),
	})

	form, ok := FormFor(tree, SelectCreative(SavedID("cr1"), SavedID("g1")))
	if !ok {
		t.Fatal("cr1 did not resolve")
	}
	got, err := ApplyForm(form, tree, SelectCreative(SavedID("cr2"), SavedID("g1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(tree) {
		t.Fatal("form rendered for cr1 was written to cr2")
	}
}

func TestApplyFormUnresolvedSelection(t *testing.T) {
	sel := SelectCreative(SavedID("cr1"), SavedID("g2"))
	form := Form{Kind: KindCreative, TargetID: sel.TargetID, ParentAdGroupID: sel.ParentAdGroupID, Creative: &CreativeForm{Title: "x"}}

	_, err := ApplyForm(form, testTree(), sel)
	var serr *StructuralIntegrityError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StructuralIntegrityError, got %v", err)
	}
}

func TestFormForRoundTrips(t *testing.T) {
	tree := testTree()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	tree.StartDate = &start

	for _, sel := range []Selection{
		SelectCampaign(SavedID("c1")),
		SelectAdGroup(SavedID("g1")),
		SelectCreative(SavedID("cr1"), SavedID("g1")),
	} {
		form, ok := FormFor(tree, sel)
		if !ok {
			t.Fatalf("%s did not resolve", sel.Kind)
		}
		if form.Selection() != sel {
			t.Fatalf("%s form targets %+v", sel.Kind, form.Selection())
		}
		got, err := ApplyForm(form, tree, sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(tree) {
			t.Fatalf("rendering then applying the %s form changed the tree", sel.Kind)
		}
	}

	if _, ok := FormFor(tree, SelectAdGroup(SavedID("g9"))); ok {
		t.Fatal("expected unknown ad group not to resolve")
	}
}
