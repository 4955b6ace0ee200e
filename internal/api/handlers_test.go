package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T, events store.EventRepo) *gin.Engine {
	t.Helper()
	return NewRouter(NewHandlers(problemgen.Default(), events, "test"))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestHandleHealth(t *testing.T) {
	w := do(t, setupTestRouter(t, nil), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	router := setupTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestHandleTopics(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/v1/grades/7/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[TopicsResponse](t, w)
	assert.Equal(t, 7, resp.Grade)
	require.Len(t, resp.Topics, 5)
	assert.Equal(t, "ratios", resp.Topics[0].ID)
	assert.NotEmpty(t, resp.Topics[0].Title)

	w = do(t, router, http.MethodGet, "/v1/grades/8/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[TopicsResponse](t, w)
	assert.Equal(t, "numbers", resp.Topics[0].ID)
}

func TestHandleTopics_Errors(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/v1/grades/9/topics", http.StatusNotFound, CodeUnknownGrade},
		{"/v1/grades/6/topics", http.StatusNotFound, CodeUnknownGrade},
		{"/v1/grades/seven/topics", http.StatusBadRequest, CodeInvalidRequest},
		{"/v1/grades/8/topics/ratios/problem", http.StatusNotFound, CodeUnknownTopic},
		{"/v1/grades/7/topics/calculus/problem", http.StatusNotFound, CodeUnknownTopic},
		{"/v1/grades/9/topics/ratios/problem", http.StatusNotFound, CodeUnknownGrade},
		{"/v1/grades/7/topics/ratios/problem?seed=-1", http.StatusBadRequest, CodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleProblem(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/v1/grades/8/topics/Functions/problem", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(8), body["grade"])
	assert.Equal(t, "functions", body["topic"])
	for _, k := range []string{"question", "answer", "hint", "solution"} {
		assert.Contains(t, body, k)
	}
	assert.NotEmpty(t, body["question"])
}

func TestHandleProblem_SeedIsReproducible(t *testing.T) {
	router := setupTestRouter(t, nil)

	a := do(t, router, http.MethodGet, "/v1/grades/7/topics/geometry/problem?seed=99", "")
	b := do(t, router, http.MethodGet, "/v1/grades/7/topics/geometry/problem?seed=99", "")
	require.Equal(t, http.StatusOK, a.Code)
	require.Equal(t, http.StatusOK, b.Code)
	assert.JSONEq(t, a.Body.String(), b.Body.String())
}

func TestHandleCheck(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		name        string
		body        string
		wantCorrect bool
		wantDisplay string
	}{
		{"fraction equals decimal", `{"user_answer":"1/2","correct_answer":0.5}`, true, "0.5 or 1/2"},
		{"wrong number", `{"user_answer":"3","correct_answer":4}`, false, "4 or 2²"},
		{"text answer", `{"user_answer":" Positive ","correct_answer":"positive"}`, true, "positive"},
		{"expression", `{"user_answer":"2(3+4)","correct_answer":14}`, true, "14"},
		{"garbage user answer", `{"user_answer":"abc","correct_answer":14}`, false, "14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/v1/check", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp := decode[CheckResponse](t, w)
			assert.Equal(t, tt.wantCorrect, resp.Correct)
			assert.Equal(t, tt.wantDisplay, resp.Display)
		})
	}
}

func TestHandleCheck_InvalidBody(t *testing.T) {
	router := setupTestRouter(t, nil)

	for _, body := range []string{
		`not json`,
		`{}`,
		`{"user_answer":"1"}`,
		`{"user_answer":1,"correct_answer":1}`,
		`{"user_answer":"1","correct_answer":true}`,
		`{"user_answer":"1","correct_answer":1,"extra":true}`,
		`{"user_answer":"` + strings.Repeat("9", maxBodyBytes) + `","correct_answer":1}`,
	} {
		w := do(t, router, http.MethodPost, "/v1/check", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %.40q", body)
		assert.Equal(t, CodeInvalidRequest, decode[ErrorResponse](t, w).Code)
	}
}

func TestHandleFormat(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		query      string
		wantStatus int
		want       string
	}{
		{"0.5", http.StatusOK, "0.5 or 1/2"},
		{"9", http.StatusOK, "9 or 3²"},
		{"0.375", http.StatusOK, "0.375 or 3/8"},
		{"7", http.StatusOK, "7"},
		{"abc", http.StatusBadRequest, ""},
		{"NaN", http.StatusBadRequest, ""},
		{"", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/v1/format?value="+tt.query, "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.want, decode[FormatResponse](t, w).Formatted)
			}
		})
	}
}

func TestHandleStats(t *testing.T) {
	w := do(t, setupTestRouter(t, nil), http.MethodGet, "/v1/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	repo := st.EventRepo()
	ctx := context.Background()
	for _, correct := range []bool{true, true, false} {
		require.NoError(t, repo.AppendAttempt(ctx, store.AttemptData{
			SessionID: "s1", Grade: 7, Topic: "ratios", Correct: correct,
		}))
	}

	w = do(t, setupTestRouter(t, repo), http.MethodGet, "/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[StatsResponse](t, w)
	require.Len(t, resp.Topics, 1)
	assert.Equal(t, 3, resp.Topics[0].Attempts)
	assert.Equal(t, 2, resp.Topics[0].Correct)
	assert.InDelta(t, 2.0/3, resp.Topics[0].Accuracy, 1e-9)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t, nil)
	do(t, router, http.MethodGet, "/v1/grades/7/topics/ratios/problem", "")

	w := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "middlemath_http_requests_total")
	assert.Contains(t, body, `middlemath_problems_generated_total{grade="7",topic="ratios"}`)
}
