package usecase

import (
	"log/slog"

	"campaign-editor/internal/core/domain"
)

// Select moves the editor to sel. The displayed form is always flushed into
// the tree first, so no edit is lost by navigating away. When sel does not
// resolve in the tree a StructuralIntegrityError is returned and the
// selection is left unchanged.
func (s *Session) Select(sel domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectLocked(sel)
}

func (s *Session) selectLocked(sel domain.Selection) error {
	if err := s.syncFormLocked(); err != nil {
		return err
	}
	if !s.tree.Resolve(sel) {
		return &domain.StructuralIntegrityError{Selection: sel, Reason: "node not in tree"}
	}
	s.setSelectionLocked(sel)
	s.logger.Debug("node selected",
		slog.String("kind", string(sel.Kind)),
		slog.String("target_id", sel.TargetID.String()),
	)
	return nil
}

// GoBack selects the parent of the current node. With the campaign selected
// there is no parent: it returns false and the caller leaves the editor.
func (s *Session) GoBack() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.selection.Kind {
	case domain.KindCreative:
		return true, s.selectLocked(domain.SelectAdGroup(s.selection.ParentAdGroupID))
	case domain.KindAdGroup:
		return true, s.selectLocked(domain.SelectCampaign(s.tree.ID))
	default:
		return false, s.syncFormLocked()
	}
}
