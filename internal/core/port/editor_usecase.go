package port

import (
	"context"
	"encoding/json"
	"errors"

	"campaign-editor/internal/core/domain"
)

var (
	// ErrUnknownCommand is returned by Dispatch for a name missing from the
	// session command table.
	ErrUnknownCommand = errors.New("unknown editor command")
	// ErrInvalidArguments is returned by Dispatch when the command
	// arguments cannot be decoded.
	ErrInvalidArguments = errors.New("invalid command arguments")
)

// EditorUseCase opens editor sessions. This interface is the primary port
// into the campaign editor; the HTTP layer owns the returned sessions.
type EditorUseCase interface {
	// NewCampaign starts a session on a fresh Pending campaign.
	NewCampaign(ctx context.Context) (EditorSession, error)
	// OpenCampaign loads the campaign with the given id and all its ad
	// groups and creatives into a new session.
	OpenCampaign(ctx context.Context, campaignID string) (EditorSession, error)
}

// EditorSession is one unit of work over a campaign tree. Every method that
// changes what the editor displays first flushes the displayed form into
// the tree.
type EditorSession interface {
	// ID returns the session identifier used by the registry and logs.
	ID() string
	// SetForm records the current state of the displayed panel. It fails
	// with domain.ErrStaleForm when the form targets another node.
	SetForm(form domain.Form) error
	// Select syncs the displayed form, then moves to sel.
	Select(sel domain.Selection) error
	// GoBack moves to the parent of the selected node. It reports false
	// when the campaign is selected and the editor should be left.
	GoBack() (bool, error)
	// AddAdGroup appends a Pending ad group and selects it.
	AddAdGroup() (domain.Selection, error)
	// AddCreative appends a Pending creative to the ad group and selects it.
	AddCreative(adGroupID domain.ID) (domain.Selection, error)
	// Remove takes the node out of the tree and, when it is Saved, queues
	// it for deletion on the next save.
	Remove(sel domain.Selection) error
	// Save runs the cascading save. See SaveResult.
	Save(ctx context.Context, forceSave bool) (SaveResult, error)
	// Dispatch runs a named editor command with raw JSON arguments.
	Dispatch(ctx context.Context, name string, args json.RawMessage) error
	// HasChanges reports whether the tree differs from the last snapshot.
	HasChanges() bool
	// Changes returns an RFC 7386 merge patch from the snapshot to the tree.
	Changes() ([]byte, error)
	// View returns a copy of the session state for rendering.
	View() View
}

// SaveResult describes a finished save. NothingToSave is set when the save
// was skipped because the tree matched the snapshot.
type SaveResult struct {
	NothingToSave bool
	Created       int
	Updated       int
	Deleted       int
}

// View is a read-only copy of a session used by the rendering layer.
type View struct {
	Campaign               *domain.Campaign `json:"campaign"`
	Selection              domain.Selection `json:"selection"`
	Form                   domain.Form      `json:"form"`
	Dirty                  bool             `json:"dirty"`
	PendingAdGroupDeletes  []string         `json:"pending_ad_group_deletes"`
	PendingCreativeDeletes []string         `json:"pending_creative_deletes"`
}
