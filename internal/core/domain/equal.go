package domain

import (
	"slices"
	"time"
)

// Equal reports whether two campaign trees are structurally identical,
// including identifiers and the order of children.
func (c *Campaign) Equal(o *Campaign) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ID == o.ID &&
		c.Name == o.Name &&
		c.Status == o.Status &&
		c.BrandID == o.BrandID &&
		c.PlatformAccountID == o.PlatformAccountID &&
		equalString(c.ModelID, o.ModelID) &&
		c.Budget == o.Budget &&
		equalTime(c.StartDate, o.StartDate) &&
		equalTime(c.EndDate, o.EndDate) &&
		c.Objective == o.Objective &&
		slices.EqualFunc(c.AdGroups, o.AdGroups, AdGroup.Equal)
}

func (g AdGroup) Equal(o AdGroup) bool {
	return g.ID == o.ID &&
		g.Name == o.Name &&
		g.Status == o.Status &&
		equalString(g.BrandID, o.BrandID) &&
		equalString(g.ModelID, o.ModelID) &&
		slices.EqualFunc(g.Creatives, o.Creatives, Creative.Equal)
}

func (c Creative) Equal(o Creative) bool {
	return c.ID == o.ID &&
		c.Name == o.Name &&
		c.Type == o.Type &&
		c.Status == o.Status &&
		slices.Equal(c.Titles, o.Titles) &&
		slices.Equal(c.CreativeURLs, o.CreativeURLs) &&
		equalString(c.BrandID, o.BrandID) &&
		equalString(c.ModelID, o.ModelID) &&
		c.ParentAdGroupID == o.ParentAdGroupID
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
