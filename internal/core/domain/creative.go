package domain

// CreativeType is the format of an individual advertisement.
type CreativeType string

const (
	CreativeImage    CreativeType = "Image"
	CreativeVideo    CreativeType = "Video"
	CreativeCarousel CreativeType = "Carousel"
	CreativeText     CreativeType = "Text"
)

// ParseCreativeType maps a form value to a CreativeType. Unknown values
// fall back to CreativeImage.
func ParseCreativeType(s string) CreativeType {
	switch t := CreativeType(s); t {
	case CreativeImage, CreativeVideo, CreativeCarousel, CreativeText:
		return t
	default:
		return CreativeImage
	}
}

// Creative is a leaf of the aggregate tree. Titles currently holds exactly
// one entry.
type Creative struct {
	ID              ID           `json:"id"`
	Name            string       `json:"name"`
	Type            CreativeType `json:"type"`
	Status          string       `json:"status"`
	Titles          []string     `json:"titles"`
	CreativeURLs    []string     `json:"creative_urls"`
	BrandID         *string      `json:"brand_id"`
	ModelID         *string      `json:"model_id"`
	ParentAdGroupID ID           `json:"parent_ad_group_id"`
}

// NewCreative returns a Pending creative with the editor defaults, owned by
// the given ad group.
func NewCreative(adGroupID ID) Creative {
	return Creative{
		ID:              NewPendingID(),
		Name:            "New Creative",
		Type:            CreativeImage,
		Status:          "active",
		Titles:          []string{""},
		CreativeURLs:    []string{""},
		ParentAdGroupID: adGroupID,
	}
}

// Title returns the first title, or an empty string.
func (c *Creative) Title() string {
	if len(c.Titles) == 0 {
		return ""
	}
	return c.Titles[0]
}

// URL returns the first creative URL, or an empty string.
func (c *Creative) URL() string {
	if len(c.CreativeURLs) == 0 {
		return ""
	}
	return c.CreativeURLs[0]
}
