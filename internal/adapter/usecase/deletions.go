package usecase

import "campaign-editor/internal/core/domain"

// idSet is an insertion-ordered set of Saved identifiers.
type idSet struct {
	ids  []domain.ID
	seen map[domain.ID]struct{}
}

// add inserts id and reports whether it was accepted. Pending identifiers
// were never durable and are refused.
func (s *idSet) add(id domain.ID) bool {
	if !id.IsSaved() {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[domain.ID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *idSet) items() []domain.ID {
	return append([]domain.ID(nil), s.ids...)
}

func (s *idSet) strings() []string {
	out := make([]string, len(s.ids))
	for i, id := range s.ids {
		out[i] = id.Value()
	}
	return out
}

func (s *idSet) len() int { return len(s.ids) }

func (s *idSet) clear() {
	s.ids = nil
	s.seen = nil
}

// DeletionTracker holds the Saved ad groups and creatives removed from the
// tree that still have to be deleted from the backend on the next save.
type DeletionTracker struct {
	adGroups  idSet
	creatives idSet
}

// MarkAdGroup queues a Saved ad group for deletion. Pending ids are ignored.
func (t *DeletionTracker) MarkAdGroup(id domain.ID) bool { return t.adGroups.add(id) }

// MarkCreative queues a Saved creative for deletion. Pending ids are ignored.
func (t *DeletionTracker) MarkCreative(id domain.ID) bool { return t.creatives.add(id) }

func (t *DeletionTracker) AdGroups() []domain.ID  { return t.adGroups.items() }
func (t *DeletionTracker) Creatives() []domain.ID { return t.creatives.items() }

// Len returns the number of queued deletions of both kinds.
func (t *DeletionTracker) Len() int { return t.adGroups.len() + t.creatives.len() }

// Clear drops every queued deletion.
func (t *DeletionTracker) Clear() {
	t.adGroups.clear()
	t.creatives.clear()
}
