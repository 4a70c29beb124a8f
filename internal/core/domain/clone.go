package domain

import (
	"slices"
	"time"
)

// Clone returns a structurally independent copy of the campaign tree.
// Nothing reachable from the copy is shared with c.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	out.ModelID = cloneString(c.ModelID)
	out.StartDate = cloneTime(c.StartDate)
	out.EndDate = cloneTime(c.EndDate)
	out.AdGroups = make([]AdGroup, len(c.AdGroups))
	for i := range c.AdGroups {
		out.AdGroups[i] = c.AdGroups[i].Clone()
	}
	return &out
}

// Clone returns a deep copy of the ad group and its creatives.
func (g AdGroup) Clone() AdGroup {
	out := g
	out.BrandID = cloneString(g.BrandID)
	out.ModelID = cloneString(g.ModelID)
	out.Creatives = make([]Creative, len(g.Creatives))
	for i := range g.Creatives {
		out.Creatives[i] = g.Creatives[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the creative.
func (c Creative) Clone() Creative {
	out := c
	out.Titles = slices.Clone(c.Titles)
	out.CreativeURLs = slices.Clone(c.CreativeURLs)
	out.BrandID = cloneString(c.BrandID)
	out.ModelID = cloneString(c.ModelID)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
