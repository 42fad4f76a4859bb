package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valuation/models"
	"valuation/repository"
	"valuation/utils"
)

type recordingAudit struct {
	mu      sync.Mutex
	changes []models.FieldChange
}

func (a *recordingAudit) LogChange(_ context.Context, change models.FieldChange) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.changes = append(a.changes, change)
	return nil
}

type recordingSink struct {
	submissions []models.Submission
}

func (s *recordingSink) Submit(_ context.Context, sub models.Submission) (string, error) {
	s.submissions = append(s.submissions, sub)
	return "submission-1", nil
}

type testServer struct {
	router *gin.Engine
	store  *repository.SessionStore
	audit  *recordingAudit
	sink   *recordingSink
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	geo, err := repository.NewDefaultGeoRepository(time.Minute)
	require.NoError(t, err)

	ts := &testServer{store: repository.NewSessionStore(geo), audit: &recordingAudit{}, sink: &recordingSink{}}
	ts.router = gin.New()
	RegisterRoutes(ts.router, Dependencies{
		Store:  ts.store,
		Geo:    geo,
		Tokens: utils.NewTokenIssuer("test-secret", time.Hour),
		Sink:   ts.sink,
		Audit:  ts.audit,
		Logger: zap.NewNop(),
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (ts *testServer) create(t *testing.T) (string, string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/valuations", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.CreateSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.EditToken)
	return resp.SessionID, resp.EditToken
}

func (ts *testServer) event(t *testing.T, id, token string, ev map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	return ts.do(t, http.MethodPost, "/api/valuations/"+id+"/events", token, ev)
}

func TestValuationFlow(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.create(t)

	w := ts.event(t, id, token, map[string]any{"section": "landDetails", "field": "documented", "value": "1000.5"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = ts.event(t, id, token, map[string]any{"section": "landValuation", "field": "guideline_rate", "value": 2500})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, 1000.5, data["area_considered"])
	assert.Equal(t, 2501250.0, data["guideline_value"])
	record := resp["record"].(map[string]any)
	assert.Contains(t, record, "landDetails")

	w = ts.do(t, http.MethodGet, "/api/valuations/"+id+"/sections/landValuation", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2501250.0, decode(t, w)["data"].(map[string]any)["guideline_value"])

	ts.audit.mu.Lock()
	require.Len(t, ts.audit.changes, 2)
	assert.Equal(t, "set", ts.audit.changes[0].Action)
	assert.Equal(t, "1000.5", ts.audit.changes[0].NewValue)
	ts.audit.mu.Unlock()
}

func TestEventsRequireMatchingToken(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.create(t)
	otherID, otherToken := ts.create(t)
	require.NotEqual(t, id, otherID)

	ev := map[string]any{"section": "comments", "field": "text", "value": "ok"}
	assert.Equal(t, http.StatusUnauthorized, ts.event(t, id, "", ev).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.event(t, id, "garbage", ev).Code)
	assert.Equal(t, http.StatusForbidden, ts.event(t, id, otherToken, ev).Code)
	assert.Equal(t, http.StatusOK, ts.event(t, id, token, ev).Code)
}

func TestEventErrors(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.create(t)

	w := ts.event(t, id, token, map[string]any{"section": "garden", "field": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.event(t, id, token, map[string]any{"field": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.event(t, id, token, map[string]any{"section": "propertyDocs", "action": "generate", "row": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = ts.event(t, id, token, map[string]any{"section": "enquiries", "field": "per_sqyd", "row": 7, "value": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/valuations/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitValuation(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.create(t)

	w := ts.do(t, http.MethodPost, "/api/valuations/"+id+"/submit", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Please fill all required fields before submitting", decode(t, w)["error"])

	events := []map[string]any{
		{"section": "basic", "field": "property_type", "value": "Land and Buildings"},
		{"section": "basic", "field": "inspection_date", "value": "2024-05-01"},
		{"section": "basic", "field": "valuation_date", "value": "2024-05-10"},
		{"section": "location", "field": "state", "value": "Telangana"},
		{"section": "location", "field": "district", "value": "Hyderabad"},
		{"section": "location", "field": "mandal", "value": "Serilingampally"},
		{"section": "location", "field": "village", "value": "Kondapur"},
		{"section": "location", "field": "sy_nos", "value": "112/A"},
		{"section": "location", "field": "plot_no", "value": "41"},
		{"section": "location", "field": "pincode", "value": "500084"},
	}
	for _, c := range models.OnlineCheckCategories {
		events = append(events, map[string]any{"section": "onlineChecks", "action": "add", "field": c.ID, "value": []string{c.ID + ".pdf"}})
	}
	for _, ev := range events {
		w := ts.event(t, id, token, ev)
		require.Equal(t, http.StatusOK, w.Code, "%v: %s", ev, w.Body.String())
	}

	w = ts.do(t, http.MethodPost, "/api/valuations/"+id+"/submit", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "submission-1", decode(t, w)["submission_id"])
	require.Len(t, ts.sink.submissions, 1)
	assert.Equal(t, "Kondapur", ts.sink.submissions[0].Village)
	assert.Contains(t, ts.sink.submissions[0].Record, models.SectionLandValuation)
}

func TestDeleteValuation(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.create(t)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, "/api/valuations/"+id, token, nil).Code)
	assert.Equal(t, 0, ts.store.Count())
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, "/api/valuations/"+id, token, nil).Code)
}

func TestLocationEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/locations/states", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Telangana", "Andhra Pradesh"}, decode(t, w)["states"])

	w = ts.do(t, http.MethodPost, "/api/locations/select", "", map[string]any{
		"selection": models.EmptyGeoSelection(), "level": "state", "value": "Andhra Pradesh",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var sel models.GeoSelection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, []string{"Krishna"}, sel.Districts)

	w = ts.do(t, http.MethodPost, "/api/locations/select", "", map[string]any{"level": "county", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectLocationRebuildsPostedOptions(t *testing.T) {
	ts := newTestServer(t)

	forged := models.GeoSelection{
		State:     "Telangana",
		District:  "Hyderabad",
		Mandal:    "Serilingampally",
		Districts: []string{"Atlantis"},
		Mandals:   []string{"Nowhere"},
		Villages:  []string{"Forged"},
	}
	w := ts.do(t, http.MethodPost, "/api/locations/select", "", map[string]any{
		"selection": forged, "level": "village", "value": "Kondapur",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var sel models.GeoSelection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, "Kondapur", sel.Village)
	assert.Equal(t, []string{"Hyderabad", "Rangareddy"}, sel.Districts)
	assert.Equal(t, []string{"Serilingampally", "Kukatpally", "Rajendranagar"}, sel.Mandals)
	assert.Equal(t, []string{"Kondapur", "Gachibowli", "Madhapur", "Miyapur"}, sel.Villages)
}

func TestApprovalEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/approvals/classify?kind=sanction%20plan", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var c models.Classification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.True(t, c.RequiresSubchoice())
	assert.Equal(t, models.CategorySanctionBody, c.Subchoice.Category)

	w = ts.do(t, http.MethodGet, "/api/approvals/classify?kind=SANCTION%20PLAN&body=GHMC%20DPMS", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	schema := decode(t, w)["schema"].(map[string]any)
	assert.Equal(t, "GHMC", schema["fixed_label"])

	w = ts.do(t, http.MethodGet, "/api/approvals/classify?kind=ROOF", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/approvals/classify?kind=OC&body=DTCP", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/approvals/kinds", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["land"], 3)
}

func TestReportDownloads(t *testing.T) {
	ts := newTestServer(t)
	id, _ := ts.create(t)

	w := ts.do(t, http.MethodGet, "/api/valuations/"+id+"/report.pdf", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = ts.do(t, http.MethodGet, "/api/valuations/"+id+"/report.xlsx", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w = ts.do(t, http.MethodGet, "/api/valuations/"+id+"/qrcode?size=64", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = ts.do(t, http.MethodGet, "/api/valuations/"+id+"/qrcode", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	ts.create(t)

	w := ts.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var h models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, models.HealthResponse{Status: "ok", DBStatus: "disabled", Sessions: 1}, h)
}
