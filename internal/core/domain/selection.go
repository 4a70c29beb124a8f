package domain

// NodeKind is the kind of tree node a selection points at.
type NodeKind string

const (
	KindCampaign NodeKind = "campaign"
	KindAdGroup  NodeKind = "ad_group"
	KindCreative NodeKind = "creative"
)

// Selection identifies the node currently shown in the editor.
// ParentAdGroupID is only meaningful for KindCreative.
type Selection struct {
	Kind            NodeKind `json:"kind"`
	TargetID        ID       `json:"target_id"`
	ParentAdGroupID ID       `json:"parent_ad_group_id,omitzero"`
}

func SelectCampaign(id ID) Selection {
	return Selection{Kind: KindCampaign, TargetID: id}
}

func SelectAdGroup(id ID) Selection {
	return Selection{Kind: KindAdGroup, TargetID: id}
}

func SelectCreative(id, adGroupID ID) Selection {
	return Selection{Kind: KindCreative, TargetID: id, ParentAdGroupID: adGroupID}
}

// Rebind rewrites references to old with resolved. It is used while a save
// replaces Pending identifiers with Saved ones.
func (s Selection) Rebind(old, resolved ID) Selection {
	if s.TargetID == old {
		s.TargetID = resolved
	}
	if s.ParentAdGroupID == old {
		s.ParentAdGroupID = resolved
	}
	return s
}
