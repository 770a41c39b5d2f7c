package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ramandeep-singh77/glassbox/catalog"
	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/internal/logging"
	"github.com/ramandeep-singh77/glassbox/server"
)

func init() {
	gin.SetMode(gin.TestMode)
	logging.Init(slog.LevelError, "text", io.Discard)
}

// ServerSuite exercises the HTTP surface end to end over httptest.
type ServerSuite struct {
	suite.Suite
	router *gin.Engine
	reg    *server.Registry
}

func (s *ServerSuite) SetupTest() {
	s.router = gin.New()
	s.reg = server.NewRegistry(0)
	server.RegisterRoutes(s.router, server.NewHandlers(s.reg))
}

// do round-trips one request through the router.
func (s *ServerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	s.T().Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

// createTrace posts a build request and decodes the 201 summary.
func (s *ServerSuite) createTrace(body any) server.TraceSummary {
	s.T().Helper()
	w := s.do(http.MethodPost, "/api/v1/traces", body)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	var summary server.TraceSummary
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &summary))
	require.NotEmpty(s.T(), summary.ID)

	return summary
}

// TestRouteTable: every endpoint is registered under its method and path.
func (s *ServerSuite) TestRouteTable() {
	expected := []struct {
		method string
		path   string
	}{
		{"GET", "/healthz"},
		{"GET", "/metrics"},
		{"POST", "/api/v1/traces"},
		{"GET", "/api/v1/traces/:id"},
		{"GET", "/api/v1/traces/:id/steps/:index"},
		{"GET", "/api/v1/scenarios"},
	}
	routes := s.router.Routes()
	for _, want := range expected {
		found := false
		for _, r := range routes {
			if r.Method == want.method && r.Path == want.path {
				found = true
				break
			}
		}
		require.True(s.T(), found, "route %s %s not registered", want.method, want.path)
	}
}

func (s *ServerSuite) TestHealthz() {
	w := s.do(http.MethodGet, "/healthz", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.JSONEq(s.T(), `{"status":"ok"}`, w.Body.String())
}

// TestCreateFromScenario: a preset name alone builds and stores a trace.
func (s *ServerSuite) TestCreateFromScenario() {
	summary := s.createTrace(map[string]any{"scenario": "open-field"})
	require.Equal(s.T(), engine.AlgoBFS, summary.Algorithm)
	require.Equal(s.T(), "open-field", summary.Scenario)
	require.True(s.T(), summary.Found)
	require.Greater(s.T(), summary.Metrics.Steps, 0)
	require.Equal(s.T(), 1, s.reg.Len())
}

// TestCreateInlineGrid: a world described in the request body, no preset.
func (s *ServerSuite) TestCreateInlineGrid() {
	summary := s.createTrace(map[string]any{
		"kind":      "grid",
		"start":     "0,0",
		"goal":      "3,3",
		"algorithm": "dijkstra",
		"grid":      map[string]any{"width": 4, "height": 4},
	})
	require.Equal(s.T(), engine.AlgoDijkstra, summary.Algorithm)
	require.True(s.T(), summary.Found)
	require.Equal(s.T(), 7, summary.PathCells)
	require.Empty(s.T(), summary.Scenario)
}

// TestCreateWithOverrides: request fields beat the preset's suggestions.
func (s *ServerSuite) TestCreateWithOverrides() {
	summary := s.createTrace(map[string]any{
		"scenario":  "walled-garden",
		"algorithm": "bfs",
	})
	require.Equal(s.T(), engine.AlgoBFS, summary.Algorithm, "override beats the preset suggestion")
	require.True(s.T(), summary.Found)
}

// TestCreateFailures: each malformed request maps to its status code.
func (s *ServerSuite) TestCreateFailures() {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", "{not json", http.StatusBadRequest},
		{"unknown scenario", `{"scenario":"atlantis"}`, http.StatusNotFound},
		{"inline without kind", `{"start":"0,0","goal":"1,1"}`, http.StatusBadRequest},
		{"override breaks preset", `{"scenario":"open-field","start":"99,99"}`, http.StatusBadRequest},
		{"bogus algorithm", `{"scenario":"open-field","algorithm":"bogosort"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/traces", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)
			require.Equal(s.T(), tc.status, w.Code, w.Body.String())
		})
	}
}

// TestGetTrace: summary by default, the whole trace with ?include=steps.
func (s *ServerSuite) TestGetTrace() {
	summary := s.createTrace(map[string]any{"scenario": "toll-roads"})

	w := s.do(http.MethodGet, "/api/v1/traces/"+summary.ID, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var got server.TraceSummary
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(s.T(), summary.ID, got.ID)
	require.Equal(s.T(), engine.AlgoDijkstra, got.Algorithm)

	w = s.do(http.MethodGet, "/api/v1/traces/"+summary.ID+"?include=steps", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var full struct {
		Summary server.TraceSummary `json:"summary"`
		Trace   engine.Trace        `json:"trace"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &full))
	require.Equal(s.T(), summary.ID, full.Summary.ID)
	require.NotEmpty(s.T(), full.Trace.Steps)
	require.Equal(s.T(), engine.PhaseInit, full.Trace.Steps[0].Phase)

	w = s.do(http.MethodGet, "/api/v1/traces/no-such-id", nil)
	require.Equal(s.T(), http.StatusNotFound, w.Code)
}

// TestGetStep: random-access playback by index, with narration.
func (s *ServerSuite) TestGetStep() {
	summary := s.createTrace(map[string]any{"scenario": "open-field"})

	var payload struct {
		Index     int                 `json:"index"`
		Total     int                 `json:"total"`
		Step      engine.StepSnapshot `json:"step"`
		Narration string              `json:"narration"`
	}
	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/traces/%s/steps/0", summary.ID), nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(s.T(), engine.PhaseInit, payload.Step.Phase)
	require.Contains(s.T(), payload.Narration, "search begins")
	require.Equal(s.T(), summary.Metrics.Steps, payload.Total)

	last := payload.Total - 1
	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/traces/%s/steps/%d", summary.ID, last), nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(s.T(), engine.PhaseFound, payload.Step.Phase)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/traces/%s/steps/%d", summary.ID, payload.Total), nil)
	require.Equal(s.T(), http.StatusNotFound, w.Code, "index one past the end")

	w = s.do(http.MethodGet, "/api/v1/traces/"+summary.ID+"/steps/later", nil)
	require.Equal(s.T(), http.StatusBadRequest, w.Code, "index must be an integer")
}

func (s *ServerSuite) TestListScenarios() {
	w := s.do(http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp struct {
		Scenarios []server.ScenarioSummary `json:"scenarios"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(s.T(), resp.Scenarios, len(catalog.List()))
	require.Equal(s.T(), "airport-hub", resp.Scenarios[0].Name, "sorted by name")
	for _, sc := range resp.Scenarios {
		require.NotEmpty(s.T(), sc.Title)
		require.NotEmpty(s.T(), sc.Kind)
	}
}

// TestMetricsExposed: building a trace surfaces the Prometheus series.
func (s *ServerSuite) TestMetricsExposed() {
	s.createTrace(map[string]any{"scenario": "open-field"})

	w := s.do(http.MethodGet, "/metrics", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(s.T(), body, "glassbox_traces_built_total")
	require.Contains(s.T(), body, "glassbox_trace_steps")
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
