package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// pendingPrefix marks the string form of a Pending identifier. It is only
// used when an ID crosses the JSON boundary; inside the module the tag
// field is the discriminant.
const pendingPrefix = "new_"

type idState uint8

const (
	idUnset idState = iota
	idPending
	idSaved
)

// ID identifies a node of the aggregate tree. It is either Pending, a
// client-generated token for an entity that has never been persisted, or
// Saved, the durable identifier assigned by the persistence backend.
type ID struct {
	state idState
	value string
}

// NewPendingID returns a fresh Pending identifier.
func NewPendingID() ID {
	return ID{state: idPending, value: uuid.NewString()}
}

// PendingID wraps an existing local token as a Pending identifier.
func PendingID(token string) ID {
	return ID{state: idPending, value: token}
}

// SavedID wraps a backend identifier. An empty id yields the zero ID.
func SavedID(id string) ID {
	if id == "" {
		return ID{}
	}
	return ID{state: idSaved, value: id}
}

// ParseID maps the external string form back to an ID.
func ParseID(s string) ID {
	if token, ok := strings.CutPrefix(s, pendingPrefix); ok {
		return PendingID(token)
	}
	return SavedID(s)
}

func (id ID) IsZero() bool    { return id.state == idUnset }
func (id ID) IsPending() bool { return id.state == idPending }
func (id ID) IsSaved() bool   { return id.state == idSaved }

// Value returns the raw token or backend id without any tag.
func (id ID) Value() string { return id.value }

// String returns the external form: "new_<token>" for Pending identifiers
// and the backend id for Saved ones.
func (id ID) String() string {
	switch id.state {
	case idPending:
		return pendingPrefix + id.value
	case idSaved:
		return id.value
	default:
		return ""
	}
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ParseID(s)
	return nil
}
