package usecase

import (
	"log/slog"

	"campaign-editor/internal/core/domain"
)

// AddAdGroup appends a Pending ad group with default values to the campaign
// and selects it.
func (s *Session) AddAdGroup() (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncFormLocked(); err != nil {
		return domain.Selection{}, err
	}
	g := domain.NewAdGroup()
	s.tree.AdGroups = append(s.tree.AdGroups, g)

	sel := domain.SelectAdGroup(g.ID)
	s.setSelectionLocked(sel)
	return sel, nil
}

// AddCreative appends a Pending creative with default values to the given
// ad group and selects it.
func (s *Session) AddCreative(adGroupID domain.ID) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncFormLocked(); err != nil {
		return domain.Selection{}, err
	}
	g := s.tree.AdGroup(adGroupID)
	if g == nil {
		return domain.Selection{}, &domain.StructuralIntegrityError{
			Selection: domain.SelectAdGroup(adGroupID),
			Reason:    "ad group not in tree",
		}
	}
	cr := domain.NewCreative(g.ID)
	g.Creatives = append(g.Creatives, cr)

	sel := domain.SelectCreative(cr.ID, g.ID)
	s.setSelectionLocked(sel)
	return sel, nil
}

// Remove takes the node addressed by sel out of the tree. Saved nodes are
// queued for deletion on the next save; Pending nodes are dropped. The
// parent of the removed node becomes the selection. Nothing is changed when
// the node or its parent cannot be resolved.
func (s *Session) Remove(sel domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncFormLocked(); err != nil {
		return err
	}

	var queued bool
	switch sel.Kind {
	case domain.KindAdGroup:
		g, ok := s.tree.RemoveAdGroup(sel.TargetID)
		if !ok {
			return &domain.StructuralIntegrityError{Selection: sel, Reason: "ad group not in tree"}
		}
		queued = s.deletions.MarkAdGroup(g.ID)
		s.setSelectionLocked(domain.SelectCampaign(s.tree.ID))
	case domain.KindCreative:
		g := s.tree.AdGroup(sel.ParentAdGroupID)
		if g == nil {
			return &domain.StructuralIntegrityError{Selection: sel, Reason: "parent ad group not in tree"}
		}
		cr, ok := g.RemoveCreative(sel.TargetID)
		if !ok {
			return &domain.StructuralIntegrityError{Selection: sel, Reason: "creative not in ad group"}
		}
		queued = s.deletions.MarkCreative(cr.ID)
		s.setSelectionLocked(domain.SelectAdGroup(g.ID))
	case domain.KindCampaign:
		return &domain.StructuralIntegrityError{Selection: sel, Reason: "campaign root cannot be removed from the editor"}
	default:
		return &domain.StructuralIntegrityError{Selection: sel, Reason: "unknown node kind"}
	}

	s.logger.Info("node removed",
		slog.String("kind", string(sel.Kind)),
		slog.String("target_id", sel.TargetID.String()),
		slog.Bool("delete_on_save", queued),
	)
	return nil
}
