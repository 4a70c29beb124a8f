package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
	"campaign-editor/internal/metrics"
)

var errNoIdentifier = errors.New("backend returned no identifier")

// Save persists the whole tree. It flushes the displayed form, validates
// every payload, then (unless forceSave is set and the tree matches the
// last snapshot) deletes queued creatives and ad groups and walks the tree
// top-down, creating Pending nodes and updating Saved ones. Each created
// node gets its Saved identifier as soon as the backend returns it, so a
// save that fails part-way can simply be retried: persisted nodes are
// updated and the rest are created.
//
// A call made while another save is running returns ErrSaveInProgress.
// Cancelling ctx does not interrupt a save that has started.
func (s *Session) Save(ctx context.Context, forceSave bool) (port.SaveResult, error) {
	if !s.saving.CompareAndSwap(false, true) {
		s.logger.Info("save already in progress, request ignored")
		metrics.RecordSave("rejected", 0)
		return port.SaveResult{}, domain.ErrSaveInProgress
	}
	defer s.saving.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A started walk runs to completion or first failure, even when the
	// caller goes away.
	start := time.Now()
	res, err := s.saveLocked(context.WithoutCancel(ctx), forceSave)
	elapsed := time.Since(start)

	var (
		verr *domain.ValidationError
		serr *domain.ServiceError
	)
	switch {
	case err == nil && res.NothingToSave:
		s.logger.Info("nothing to save")
		metrics.RecordSave("skipped", elapsed)
	case err == nil:
		s.logger.Info("campaign saved",
			slog.String("campaign_id", s.tree.ID.String()),
			slog.Int("created", res.Created),
			slog.Int("updated", res.Updated),
			slog.Int("deleted", res.Deleted),
			slog.Duration("elapsed", elapsed),
		)
		metrics.RecordSave("saved", elapsed)
	case errors.As(err, &verr):
		s.logger.Warn("save rejected by validation", slog.Any("error", err))
		metrics.RecordSave("invalid", elapsed)
	case errors.As(err, &serr):
		s.logger.Error("save aborted",
			slog.String("entity", string(serr.Entity)),
			slog.String("op", serr.Op),
			slog.String("name", serr.Name),
			slog.Int("created", res.Created),
			slog.Int("updated", res.Updated),
			slog.Int("deleted", res.Deleted),
			slog.Any("error", serr.Err),
		)
		metrics.RecordSave("failed", elapsed)
	default:
		s.logger.Error("save failed", slog.Any("error", err))
		metrics.RecordSave("failed", elapsed)
	}
	return res, err
}

func (s *Session) saveLocked(ctx context.Context, forceSave bool) (port.SaveResult, error) {
	var res port.SaveResult

	if err := s.syncFormLocked(); err != nil {
		return res, err
	}
	if !forceSave && s.tree.Equal(s.snapshot) {
		res.NothingToSave = true
		return res, nil
	}
	if err := validateTree(s.tree); err != nil {
		return res, err
	}

	if err := s.flushDeletions(ctx, &res); err != nil {
		return res, err
	}

	campaignID, err := s.upsertCampaign(ctx, &res)
	if err != nil {
		return res, err
	}
	for i := range s.tree.AdGroups {
		g := &s.tree.AdGroups[i]
		adGroupID, err := s.upsertAdGroup(ctx, campaignID, g, &res)
		if err != nil {
			return res, err
		}
		for j := range g.Creatives {
			if err = s.upsertCreative(ctx, campaignID, adGroupID, &g.Creatives[j], &res); err != nil {
				return res, err
			}
		}
	}

	s.snapshot = s.tree.Clone()
	return res, nil
}

// flushDeletions deletes queued creatives, then queued ad groups, so that
// children always go before their parents. The queues are cleared only once
// every call succeeded; deleting an id twice is harmless.
func (s *Session) flushDeletions(ctx context.Context, res *port.SaveResult) error {
	for _, id := range s.deletions.Creatives() {
		err := s.svc.Creatives.Delete(ctx, id.Value())
		metrics.RecordBackendCall(string(domain.KindCreative), "delete", err)
		if err != nil {
			return &domain.ServiceError{Entity: domain.KindCreative, Op: "delete", ID: id, Err: err}
		}
		res.Deleted++
	}
	for _, id := range s.deletions.AdGroups() {
		err := s.svc.AdGroups.Delete(ctx, id.Value())
		metrics.RecordBackendCall(string(domain.KindAdGroup), "delete", err)
		if err != nil {
			return &domain.ServiceError{Entity: domain.KindAdGroup, Op: "delete", ID: id, Err: err}
		}
		res.Deleted++
	}
	s.deletions.Clear()
	return nil
}

func (s *Session) upsertCampaign(ctx context.Context, res *port.SaveResult) (string, error) {
	c := s.tree
	saved, op, err := upsert(ctx, s.svc.Campaigns, c.ID, campaignPayload(c))
	metrics.RecordBackendCall(string(domain.KindCampaign), op, err)
	if err == nil && !saved.ID.IsSaved() {
		err = errNoIdentifier
	}
	if err != nil {
		return "", &domain.ServiceError{Entity: domain.KindCampaign, Op: op, Name: c.Name, ID: c.ID, Err: err}
	}
	s.resolve(c.ID, saved.ID, op, res)
	c.ID = saved.ID
	return c.ID.Value(), nil
}

func (s *Session) upsertAdGroup(ctx context.Context, campaignID string, g *domain.AdGroup, res *port.SaveResult) (string, error) {
	saved, op, err := upsert(ctx, s.svc.AdGroups, g.ID, adGroupPayload(campaignID, g))
	metrics.RecordBackendCall(string(domain.KindAdGroup), op, err)
	if err == nil && !saved.ID.IsSaved() {
		err = errNoIdentifier
	}
	if err != nil {
		return "", &domain.ServiceError{Entity: domain.KindAdGroup, Op: op, Name: g.Name, ID: g.ID, Err: err}
	}
	s.resolve(g.ID, saved.ID, op, res)
	g.ID = saved.ID
	for i := range g.Creatives {
		g.Creatives[i].ParentAdGroupID = g.ID
	}
	return g.ID.Value(), nil
}

func (s *Session) upsertCreative(ctx context.Context, campaignID, adGroupID string, cr *domain.Creative, res *port.SaveResult) error {
	saved, op, err := upsert(ctx, s.svc.Creatives, cr.ID, creativePayload(campaignID, adGroupID, cr))
	metrics.RecordBackendCall(string(domain.KindCreative), op, err)
	if err == nil && !saved.ID.IsSaved() {
		err = errNoIdentifier
	}
	if err != nil {
		return &domain.ServiceError{Entity: domain.KindCreative, Op: op, Name: cr.Name, ID: cr.ID, Err: err}
	}
	s.resolve(cr.ID, saved.ID, op, res)
	cr.ID = saved.ID
	return nil
}

// resolve counts the call and makes the selection and the displayed form
// follow an identifier rewritten by the backend.
func (s *Session) resolve(old, saved domain.ID, op string, res *port.SaveResult) {
	if op == "create" {
		res.Created++
	} else {
		res.Updated++
	}
	if old != saved {
		s.selection = s.selection.Rebind(old, saved)
		s.form = s.form.Rebind(old, saved)
	}
}

// upsert creates the entity when id is Pending and updates it when Saved.
func upsert[P, E any](ctx context.Context, svc port.EntityService[P, E], id domain.ID, payload P) (E, string, error) {
	if id.IsSaved() {
		e, err := svc.Update(ctx, id.Value(), payload)
		return e, "update", err
	}
	e, err := svc.Create(ctx, payload)
	return e, "create", err
}

func campaignPayload(c *domain.Campaign) port.CampaignPayload {
	status := c.Status
	if status == "" {
		status = "active"
	}
	return port.CampaignPayload{
		Name:              c.Name,
		Status:            status,
		BrandID:           c.BrandID,
		PlatformAccountID: c.PlatformAccountID,
		ModelID:           c.ModelID,
		Budget:            c.Budget,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Objective:         c.Objective,
	}
}

func adGroupPayload(campaignID string, g *domain.AdGroup) port.AdGroupPayload {
	return port.AdGroupPayload{
		CampaignID: campaignID,
		Name:       g.Name,
		Status:     g.Status,
		BrandID:    g.BrandID,
		ModelID:    g.ModelID,
	}
}

func creativePayload(campaignID, adGroupID string, cr *domain.Creative) port.CreativePayload {
	return port.CreativePayload{
		AdGroupID:    adGroupID,
		CampaignID:   campaignID,
		Name:         cr.Name,
		Type:         cr.Type,
		Status:       cr.Status,
		Titles:       cr.Titles,
		CreativeURLs: cr.CreativeURLs,
		BrandID:      cr.BrandID,
		ModelID:      cr.ModelID,
	}
}
