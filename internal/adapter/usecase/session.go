package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

// Session is one editor session over a campaign tree. It owns the tree,
// the snapshot taken at the last load or save, the deletion tracker, the
// current selection and the state of the displayed form. Sessions share
// nothing with each other.
//
// All methods are safe for concurrent use. Save rejects overlapping calls
// instead of queueing them; every other method waits for a running save.
type Session struct {
	id       string
	svc      Services
	logger   *slog.Logger
	commands map[string]Command

	saving atomic.Bool

	mu        sync.Mutex
	tree      *domain.Campaign
	snapshot  *domain.Campaign
	deletions DeletionTracker
	selection domain.Selection
	form      domain.Form
}

func newSession(tree *domain.Campaign, svc Services, logger *slog.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		id:       id,
		svc:      svc,
		logger:   logger.With(slog.String("session_id", id)),
		commands: defaultCommands(),
		tree:     tree,
		snapshot: tree.Clone(),
	}
	s.setSelectionLocked(domain.SelectCampaign(tree.ID))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetForm records the state of the panel currently displayed by the UI. It
// is flushed into the tree before the next navigation, mutation or save.
// A form rendered for another node than the selected one is refused with
// ErrStaleForm and the recorded form is kept.
func (s *Session) SetForm(form domain.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if got := form.Selection(); got != s.selection {
		s.logger.Info("stale form refused",
			slog.String("form_kind", string(got.Kind)),
			slog.String("form_target_id", got.TargetID.String()),
			slog.String("selected_target_id", s.selection.TargetID.String()),
		)
		return fmt.Errorf("%w: %s %s is selected", domain.ErrStaleForm, s.selection.Kind, s.selection.TargetID)
	}
	s.form = form
	return nil
}

// HasChanges reports whether the tree, with the displayed form applied,
// differs structurally from the last snapshot.
func (s *Session) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := domain.ApplyForm(s.form, s.tree, s.selection)
	if err != nil {
		return true
	}
	return !tree.Equal(s.snapshot)
}

// Changes returns an RFC 7386 merge patch turning the snapshot into the
// current tree. An unchanged tree yields "{}".
func (s *Session) Changes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := domain.ApplyForm(s.form, s.tree, s.selection)
	if err != nil {
		return nil, err
	}
	original, err := json.Marshal(s.snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	modified, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return jsonpatch.CreateMergePatch(original, modified)
}

// View returns a copy of the session state for rendering.
func (s *Session) View() port.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := domain.ApplyForm(s.form, s.tree, s.selection)
	dirty := err != nil || !tree.Equal(s.snapshot)
	return port.View{
		Campaign:               s.tree.Clone(),
		Selection:              s.selection,
		Form:                   s.form,
		Dirty:                  dirty,
		PendingAdGroupDeletes:  s.deletions.adGroups.strings(),
		PendingCreativeDeletes: s.deletions.creatives.strings(),
	}
}

// Dispatch runs the named command from the session command table.
func (s *Session) Dispatch(ctx context.Context, name string, args json.RawMessage) error {
	cmd, ok := s.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", port.ErrUnknownCommand, name)
	}
	s.logger.Debug("dispatch command", slog.String("command", name))
	return cmd(ctx, s, args)
}

func (s *Session) currentSelection() domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// syncFormLocked flushes the displayed form into the tree.
func (s *Session) syncFormLocked() error {
	tree, err := domain.ApplyForm(s.form, s.tree, s.selection)
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}

// setSelectionLocked switches to sel and renders its panel from the tree.
func (s *Session) setSelectionLocked(sel domain.Selection) {
	s.selection = sel
	s.form, _ = domain.FormFor(s.tree, sel)
}
