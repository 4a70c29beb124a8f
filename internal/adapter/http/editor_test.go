package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-editor/internal/adapter/usecase"
	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
	"campaign-editor/internal/core/port/mocks"
)

type testServer struct {
	campaigns *mocks.MockEntityService[port.CampaignPayload, domain.Campaign]
	adGroups  *mocks.MockEntityService[port.AdGroupPayload, domain.AdGroup]
	creatives *mocks.MockEntityService[port.CreativePayload, domain.Creative]
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{
		campaigns: mocks.NewMockEntityService[port.CampaignPayload, domain.Campaign](t),
		adGroups:  mocks.NewMockEntityService[port.AdGroupPayload, domain.AdGroup](t),
		creatives: mocks.NewMockEntityService[port.CreativePayload, domain.Creative](t),
	}
	uc := usecase.NewEditorUseCase(usecase.Services{
		Campaigns: ts.campaigns,
		AdGroups:  ts.adGroups,
		Creatives: ts.creatives,
	}, discardLogger())
	ts.handler = NewHandler(uc, NewRegistry(time.Hour, 0, discardLogger()), discardLogger()).Router()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (ts *testServer) createSession(t *testing.T) sessionResponse {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/editor/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[sessionResponse](t, rec)
}

func TestCreateSessionForNewCampaign(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.createSession(t)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Campaign.ID.IsPending())
	assert.Equal(t, domain.KindCampaign, resp.Selection.Kind)
	assert.False(t, resp.Dirty)

	rec := ts.do(t, http.MethodGet, "/api/v1/editor/sessions/"+resp.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateSessionUnknownCampaign(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().
		Get(mock.Anything, "c404").
		Return(domain.Campaign{}, port.ErrNotFound).
		Once()

	rec := ts.do(t, http.MethodPost, "/api/v1/editor/sessions", `{"campaign_id":"c404"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormCommandsAndSave(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p port.CampaignPayload) bool { return p.Name == "Launch" })).
		Return(domain.Campaign{ID: domain.SavedID("c1")}, nil).
		Once()
	ts.adGroups.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p port.AdGroupPayload) bool { return p.CampaignID == "c1" })).
		Return(domain.AdGroup{ID: domain.SavedID("g1")}, nil).
		Once()
	ts.campaigns.EXPECT().
		Update(mock.Anything, "c1", mock.Anything).
		Return(domain.Campaign{ID: domain.SavedID("c1")}, nil).
		Once()

	created := ts.createSession(t)
	base := "/api/v1/editor/sessions/" + created.ID

	rec := ts.do(t, http.MethodPut, base+"/form", fmt.Sprintf(`{"kind":"campaign","target_id":%q,"campaign":{
		"name":"Launch","status":"active","brand_id":"b1","platform_account_id":"a1","budget":"99","budget_kind":"Daily"}}`,
		created.Campaign.ID.String()))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[sessionResponse](t, rec).Dirty)

	rec = ts.do(t, http.MethodGet, base+"/changes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/merge-patch+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"name":"Launch"`)

	rec = ts.do(t, http.MethodPost, base+"/commands/save_and_add_ad_group", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[sessionResponse](t, rec)
	assert.Equal(t, domain.SavedID("c1"), resp.Campaign.ID)
	assert.Equal(t, domain.KindAdGroup, resp.Selection.Kind)

	rec = ts.do(t, http.MethodPost, base+"/commands/save", `{"force":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp = decode[sessionResponse](t, rec)
	assert.Equal(t, domain.SelectAdGroup(domain.SavedID("g1")), resp.Selection)
	assert.False(t, resp.Dirty)
}

func TestErrorStatuses(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(domain.Campaign{}, errors.New("backend down")).
		Once()

	created := ts.createSession(t)
	base := "/api/v1/editor/sessions/" + created.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/api/v1/editor/sessions/nope", "", http.StatusNotFound},
		{"unknown command", http.MethodPost, base + "/commands/publish", "", http.StatusNotFound},
		{"malformed arguments", http.MethodPost, base + "/commands/select", `{"kind":`, http.StatusBadRequest},
		{"unresolvable selection", http.MethodPost, base + "/commands/select", `{"kind":"ad_group","target_id":"g9"}`, http.StatusUnprocessableEntity},
		{"validation", http.MethodPost, base + "/commands/save", `{"force":true}`, http.StatusBadRequest},
		{"invalid form", http.MethodPut, base + "/form", `[`, http.StatusBadRequest},
		{"form for another node", http.MethodPut, base + "/form", `{"kind":"campaign","target_id":"c9","campaign":{"name":"X"}}`, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec := ts.do(t, http.MethodPut, base+"/form", fmt.Sprintf(
		`{"kind":"campaign","target_id":%q,"campaign":{"name":"X","brand_id":"b","platform_account_id":"a"}}`,
		created.Campaign.ID.String()))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPost, base+"/commands/save", "")
	require.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())
	errResp := decode[errorResponse](t, rec)
	assert.Equal(t, "campaign", errResp.Entity)
	assert.Equal(t, "X", errResp.Name)
}

func TestSaveWhileSavingIsAccepted(t *testing.T) {
	ts := newTestServer(t)
	entered, release := make(chan struct{}), make(chan struct{})
	ts.campaigns.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.CampaignPayload) (domain.Campaign, error) {
			close(entered)
			<-release
			return domain.Campaign{ID: domain.SavedID("c1")}, nil
		}).
		Once()

	created := ts.createSession(t)
	base := "/api/v1/editor/sessions/" + created.ID
	rec := ts.do(t, http.MethodPut, base+"/form", fmt.Sprintf(
		`{"kind":"campaign","target_id":%q,"campaign":{"name":"Launch","brand_id":"b","platform_account_id":"a"}}`,
		created.Campaign.ID.String()))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- ts.do(t, http.MethodPost, base+"/commands/save", "") }()
	<-entered

	rec = ts.do(t, http.MethodPost, base+"/commands/save", "")
	assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	resp := decode[saveInProgressResponse](t, rec)
	assert.True(t, resp.SaveInProgress)
	assert.Equal(t, created.ID, resp.ID)

	close(release)
	rec = <-first
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.SavedID("c1"), decode[sessionResponse](t, rec).Campaign.ID)
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createSession(t).ID

	rec := ts.do(t, http.MethodDelete, "/api/v1/editor/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/editor/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.createSession(t)

	rec := ts.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_editor_editor_open_sessions")
}
