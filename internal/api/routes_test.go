package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpulse/skillpulse/internal/api"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository/sqlite"
	"github.com/skillpulse/skillpulse/internal/services"
	"github.com/skillpulse/skillpulse/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := testutil.NewTestDB(t)

	records := sqlite.NewMemoryRepository(database)
	prefsRepo := sqlite.NewPreferencesRepository(database)
	metricsRepo := sqlite.NewMetricsRepository(database)

	prefs := services.NewPreferencesService(prefsRepo)
	srv := &api.Server{
		Memory:      services.NewMemoryService(records),
		Sessions:    services.NewSessionService(records, prefs, metricsRepo, nil, nil),
		Insights:    services.NewInsightsService(records, metricsRepo),
		Preferences: prefs,
		DB:          database,
	}

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIRequiresUserHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAttemptThenReviewFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/attempts", map[string]any{
		"question_id":       "q1",
		"category":          "finance",
		"is_correct":        false,
		"response_time_ms":  2500,
		"difficulty_rating": 4,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var attemptOut struct {
		Record models.MemoryRecord `json:"record"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&attemptOut))
	assert.Equal(t, 0.3, attemptOut.Record.MemoryStrength)

	// A weak memory qualifies for review even before its due date.
	resp = doJSON(t, ts, http.MethodGet, "/api/reviews", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviewsOut struct {
		Reviews []models.MemoryRecord `json:"reviews"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reviewsOut))
	require.Equal(t, 1, reviewsOut.Count)
	assert.Equal(t, "q1", reviewsOut.Reviews[0].QuestionID)
}

func TestAttemptValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/attempts", map[string]any{
		"is_correct": true,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanSessionEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/sessions/plan", map[string]any{
		"questions": []map[string]any{
			{"id": "q1", "category": "finance"},
			{"id": "q2", "category": "ops"},
			{"id": "q3", "category": "ops"},
		},
		"session_length": 5,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan models.SessionPlan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	// No history: ceil(5 * 0.4) = 2 new questions, easy recommendation from
	// the neutral accuracy prior.
	assert.Len(t, plan.Questions, 2)
	assert.Equal(t, "easy", plan.RecommendedDifficulty)
}

func TestRecordSessionEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/sessions", map[string]any{
		"duration_ms":        600000,
		"questions_answered": 12,
		"accuracy":           0.9,
		"time_of_day":        "morning",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Metrics models.EfficiencyMetrics `json:"metrics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 11, out.Metrics.OptimalSessionLength)
}

func TestPreferencesRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/preferences", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var prefs models.Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prefs))
	assert.Equal(t, models.DefaultPreferences(), prefs)

	prefs.Difficulty = "hard"
	prefs.FocusMode = models.FocusReview
	resp = doJSON(t, ts, http.MethodPut, "/api/preferences", prefs)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/preferences", nil)
	defer resp.Body.Close()
	var stored models.Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	assert.Equal(t, "hard", stored.Difficulty)
	assert.Equal(t, models.FocusReview, stored.FocusMode)
}

func TestPreferencesValidation(t *testing.T) {
	ts := newTestServer(t)

	prefs := models.DefaultPreferences()
	prefs.FocusMode = "cramming"
	resp := doJSON(t, ts, http.MethodPut, "/api/preferences", prefs)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatsAndEfficiencyEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/attempts", map[string]any{
		"question_id": "q1", "category": "finance", "is_correct": true,
	})
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/stats", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.PerformanceStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalQuestions)
	assert.Equal(t, 1.0, stats.AverageAccuracy)

	resp = doJSON(t, ts, http.MethodGet, "/api/efficiency", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report models.EfficiencyReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Greater(t, report.Score, 0.0)
}

func TestRecordsEndpointFilters(t *testing.T) {
	ts := newTestServer(t)

	for _, q := range []struct {
		id      string
		correct bool
	}{{"q1", true}, {"q2", false}} {
		resp := doJSON(t, ts, http.MethodPost, "/api/attempts", map[string]any{
			"question_id": q.id, "category": "finance", "is_correct": q.correct,
		})
		resp.Body.Close()
	}

	resp := doJSON(t, ts, http.MethodGet, "/api/records?max_strength=0.5", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Records []models.MemoryRecord `json:"records"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "q2", out.Records[0].QuestionID)
}

func TestReportEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/report", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
}
