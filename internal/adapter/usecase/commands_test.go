package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

func expectUnchangedSave(b *testBackend) {
	b.campaigns.EXPECT().
		Update(mock.Anything, "c1", mock.Anything).
		Return(domain.Campaign{ID: domain.SavedID("c1")}, nil).
		Once()
	b.adGroups.EXPECT().
		Update(mock.Anything, "g1", mock.Anything).
		Return(domain.AdGroup{ID: domain.SavedID("g1")}, nil).
		Once()
	b.creatives.EXPECT().
		Update(mock.Anything, "cr1", mock.Anything).
		Return(domain.Creative{ID: domain.SavedID("cr1")}, nil).
		Once()
}

func TestSaveAndAddCreative(t *testing.T) {
	b := newTestBackend(t)
	expectUnchangedSave(b)

	s := newSession(savedTree(), b.services(), discardLogger())
	require.NoError(t, s.Select(domain.SelectAdGroup(domain.SavedID("g1"))))

	require.NoError(t, s.Dispatch(context.Background(), "save_and_add_creative", nil))
	assert.Equal(t, domain.KindCreative, s.selection.Kind)
	assert.Equal(t, domain.SavedID("g1"), s.selection.ParentAdGroupID)
	assert.Len(t, s.tree.AdGroups[0].Creatives, 2)
}

func TestSaveAndAddCreativeNeedsAdGroup(t *testing.T) {
	b := newTestBackend(t)
	expectUnchangedSave(b)

	s := newSession(savedTree(), b.services(), discardLogger())

	err := s.Dispatch(context.Background(), "save_and_add_creative", nil)
	var serr *domain.StructuralIntegrityError
	require.ErrorAs(t, err, &serr)
	assert.Len(t, s.tree.AdGroups[0].Creatives, 1)
}

func TestSaveAndAddAnotherCreative(t *testing.T) {
	b := newTestBackend(t)
	expectUnchangedSave(b)

	s := newSession(savedTree(), b.services(), discardLogger())
	require.NoError(t, s.Select(domain.SelectCreative(domain.SavedID("cr1"), domain.SavedID("g1"))))

	require.NoError(t, s.Dispatch(context.Background(), "save_and_add_another_creative", nil))
	assert.Equal(t, domain.SavedID("g1"), s.selection.ParentAdGroupID)
	assert.True(t, s.selection.TargetID.IsPending())
}

func TestSaveAndAddAdGroupStopsOnFailure(t *testing.T) {
	b := newTestBackend(t)
	b.campaigns.EXPECT().
		Update(mock.Anything, "c1", mock.Anything).
		Return(domain.Campaign{}, errors.New("timeout")).
		Once()

	s := newSession(savedTree(), b.services(), discardLogger())

	err := s.Dispatch(context.Background(), "save_and_add_ad_group", nil)
	var serr *domain.ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Spring Sale", serr.Name)
	assert.Len(t, s.tree.AdGroups, 1)
}

func TestSaveCommandHonoursForce(t *testing.T) {
	b := newTestBackend(t)
	s := newSession(savedTree(), b.services(), discardLogger())

	// Nothing changed and force is off: no backend call.
	require.NoError(t, s.Dispatch(context.Background(), "save", json.RawMessage(`{"force":false}`)))

	expectUnchangedSave(b)
	require.NoError(t, s.Dispatch(context.Background(), "save", json.RawMessage(`{"force":true}`)))
}

func TestSaveCommandPassesThroughPayload(t *testing.T) {
	b := newTestBackend(t)
	b.campaigns.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p port.CampaignPayload) bool {
			return p.Budget == domain.Budget{Amount: 250.5, Kind: domain.BudgetTotal} && p.ModelID == nil
		})).
		Return(domain.Campaign{ID: domain.SavedID("c7")}, nil).
		Once()

	s := newSession(domain.NewCampaign(), b.services(), discardLogger())
	require.NoError(t, s.SetForm(campaignForm(s.tree.ID, "Launch")))

	require.NoError(t, s.Dispatch(context.Background(), "save", nil))
	assert.Equal(t, domain.SelectCampaign(domain.SavedID("c7")), s.selection)
}
