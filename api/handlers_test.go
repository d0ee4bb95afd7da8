package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicstalent-sudo/level-up-backend/internal/analytics"
	testutil "github.com/epicstalent-sudo/level-up-backend/internal/testing"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

type testServer struct {
	router    *gin.Engine
	analytics *analytics.Service
	logs      *bytes.Buffer
}

func setupTestRouter(t *testing.T, cfg RouterConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, logs := testutil.NewTestServiceWithLogs(t)
	tracker := analytics.NewService(svc)
	apiHandler := NewAPI(svc, svc, tracker, testutil.NewLogger(logs))

	return &testServer{router: NewRouter(cfg, apiHandler), analytics: tracker, logs: logs}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type searchResponseBody struct {
	Count   int                     `json:"count"`
	Results []model.RankedCandidate `json:"results"`
	QueryID string                  `json:"query_id"`
	Took    int64                   `json:"took"`
}

func decodeSearch(t *testing.T, w *httptest.ResponseRecorder) searchResponseBody {
	t.Helper()
	var body searchResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestSearchHandler(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{MaxRequestBytes: 1 << 20})

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"empty body returns everything", "", []string{"1", "2", "c-3", "4"}},
		{"empty object returns everything", `{}`, []string{"1", "2", "c-3", "4"}},
		{"skills rank results", `{"skills": ["java"]}`, []string{"1", "4", "2", "c-3"}},
		{"numeric strings are accepted", `{"minExp": "5", "maxDistance": "20"}`, []string{"1", "c-3"}},
		{"falsy filters are ignored", `{"minExp": 0, "maxDistance": "", "location": ""}`, []string{"1", "2", "c-3", "4"}},
		{"text query", `{"query": "java"}`, []string{"1", "4"}},
		{"malformed query falls back", `{"query": "java AND", "location": "chennai"}`, []string{"1", "c-3"}},
		{"no matches", `{"location": "Pune"}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, "/api/search", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			body := decodeSearch(t, w)
			assert.Equal(t, tt.want, testutil.ResultIDs(body.Results))
			assert.Equal(t, len(body.Results), body.Count)
			assert.NotEmpty(t, body.QueryID)
		})
	}
}

func TestSearchHandler_ResponseShape(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	w := srv.do(http.MethodPost, "/api/search", `{"skills": ["SQL", "java"], "maxDistance": 15}`)
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Count   int              `json:"count"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Equal(t, 2, raw.Count)

	first := raw.Results[0]
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Asha", first["name"], "extra dataset attributes are passed through")
	assert.Equal(t, float64(2), first["skillMatchCount"])
	assert.Equal(t, "c-3", raw.Results[1]["id"])
	assert.Equal(t, float64(0), raw.Results[1]["skillMatchCount"])
}

func TestSearchHandler_BadRequests(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{MaxRequestBytes: 4096})

	tests := []struct {
		name     string
		body     string
		wantCode ErrorCode
		status   int
	}{
		{"invalid json", `{"query": `, ErrorCodeInvalidJSON, http.StatusBadRequest},
		{"wrong type", `{"skills": "java"}`, ErrorCodeInvalidJSON, http.StatusBadRequest},
		{"bad filter type", `{"minExp": {"gte": 3}}`, ErrorCodeInvalidJSON, http.StatusBadRequest},
		{"array filter", `{"minExp": []}`, ErrorCodeInvalidJSON, http.StatusBadRequest},
		{"query too long", `{"query": "` + strings.Repeat("a", 2049) + `"}`, ErrorCodeValidationFailed, http.StatusBadRequest},
		{"body too large", `{"query": "` + strings.Repeat("a", 5000) + `"}`, ErrorCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, "/api/search", tt.body)
			assert.Equal(t, tt.status, w.Code)

			var apiErr APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.NotEmpty(t, apiErr.RequestID)
		})
	}
}

func TestSearchHandler_ValidationDetails(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	skills := make([]string, 101)
	for i := range skills {
		skills[i] = "go"
	}
	payload, err := json.Marshal(map[string]any{"skills": skills, "location": strings.Repeat("x", 257)})
	require.NoError(t, err)

	w := srv.do(http.MethodPost, "/api/search", string(payload))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	fields := make([]string, 0, len(apiErr.Details))
	for _, d := range apiErr.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"location", "skills"}, fields)
}

func TestSearchHandler_TracksAnalytics(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	srv.do(http.MethodPost, "/api/search", `{"query": "java"}`)
	srv.do(http.MethodPost, "/api/search", `{"query": "skills:"}`)
	srv.do(http.MethodPost, "/api/search", `{}`)

	require.Eventually(t, func() bool {
		dashboard, _ := srv.analytics.GetDashboardData()
		return dashboard.TotalSearches == 3
	}, time.Second, 10*time.Millisecond)

	w := srv.do(http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard model.AnalyticsDashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, model.SearchTypeStats{Browse: 1, Text: 1, Fallback: 1}, dashboard.SearchTypes)
	assert.Equal(t, 4, dashboard.TotalCandidates)
	assert.Len(t, dashboard.PopularSearches, 2)

	assert.Contains(t, srv.logs.String(), "text search failed")
}

func TestGetCandidateHandler(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	w := srv.do(http.MethodGet, "/api/candidates/c-3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var candidate model.Candidate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &candidate))
	assert.Equal(t, "New Chennai", candidate.Location)

	w = srv.do(http.MethodGet, "/api/candidates/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)

	w = srv.do(http.MethodGet, "/api/candidates/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeCandidateNotFound))
}

func TestGetStatsHandler(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	w := srv.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.IndexStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.CandidateCount)
	assert.Equal(t, []string{"headline", "skills", "currentRole"}, stats.SearchableFields)
}

func TestHealthCheckHandler(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	w := srv.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestNoRoute(t *testing.T) {
	srv := setupTestRouter(t, RouterConfig{})

	w := srv.do(http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeRouteNotFound))
}

func TestAnalyticsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := testutil.NewTestService(t)
	router := NewRouter(RouterConfig{}, NewAPI(svc, svc, nil, testutil.NewLogger(nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
