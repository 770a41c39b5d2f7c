// Package server exposes trace building and playback over HTTP. Traces
// live in an in-memory registry for the lifetime of the process; clients
// create one with a POST and then page through its steps by index.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ramandeep-singh77/glassbox/catalog"
	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/internal/logging"
	"github.com/ramandeep-singh77/glassbox/narrate"
)

// TraceRequest creates a trace from a named scenario or an inline world.
// When Scenario is set, the remaining fields override the preset's
// suggestions; otherwise Kind plus Grid or Graph describe the world
// directly, in the same shape the scenario files use.
type TraceRequest struct {
	Scenario  string              `json:"scenario,omitempty"`
	Kind      string              `json:"kind,omitempty"`
	Grid      *catalog.GridSpec   `json:"grid,omitempty"`
	Graph     *catalog.GraphSpec  `json:"graph,omitempty"`
	Start     string              `json:"start,omitempty"`
	Goal      string              `json:"goal,omitempty"`
	Algorithm string              `json:"algorithm,omitempty"`
	Heuristic string              `json:"heuristic,omitempty"`
	Weight    *float64            `json:"weight,omitempty"`
}

// TraceSummary is the lightweight view of a stored trace.
type TraceSummary struct {
	ID        string           `json:"id"`
	Scenario  string           `json:"scenario,omitempty"`
	Algorithm engine.Algorithm `json:"algorithm"`
	Heuristic string           `json:"heuristic,omitempty"`
	Weight    float64          `json:"weight"`
	Start     string           `json:"start"`
	Goal      string           `json:"goal"`
	Found     bool             `json:"found"`
	PathCells int              `json:"path_cells"`
	Metrics   engine.Metrics   `json:"metrics"`
	CreatedAt time.Time        `json:"created_at"`
}

// ScenarioSummary lists one embedded preset.
type ScenarioSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind"`
	Algorithm   string `json:"algorithm,omitempty"`
}

// Handlers carries the server dependencies into the route functions.
type Handlers struct {
	reg *Registry
	log *slog.Logger
}

// NewHandlers wires handlers over a registry.
func NewHandlers(reg *Registry) *Handlers {
	return &Handlers{reg: reg, log: logging.New("server")}
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListScenarios returns the embedded preset catalog.
func (h *Handlers) ListScenarios(c *gin.Context) {
	all, err := catalog.All()
	if err != nil {
		h.log.Error("embedded catalog failed to load", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	out := make([]ScenarioSummary, len(all))
	for i, s := range all {
		out[i] = ScenarioSummary{
			Name:        s.Name,
			Title:       s.Title,
			Description: s.Description,
			Kind:        s.Kind,
			Algorithm:   s.Algorithm,
		}
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

// CreateTrace builds a trace and stores it under a fresh id.
func (h *Handlers) CreateTrace(c *gin.Context) {
	var req TraceRequest
	if err := c.BindJSON(&req); err != nil {
		traceBuildErrors.WithLabelValues("bad_json").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	scenario, status, err := h.resolveScenario(&req)
	if err != nil {
		traceBuildErrors.WithLabelValues("bad_scenario").Inc()
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	world, err := scenario.Environment()
	if err != nil {
		traceBuildErrors.WithLabelValues("bad_world").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tr, err := engine.BuildTrace(world, scenario.Start, scenario.Goal, scenario.Options()...)
	if err != nil {
		traceBuildErrors.WithLabelValues("bad_options").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracesBuiltTotal.WithLabelValues(string(tr.Algorithm), strconv.FormatBool(tr.Found)).Inc()
	traceSteps.Observe(float64(tr.Metrics.Steps))

	id := h.reg.Put(req.Scenario, tr)
	h.log.Info("trace built",
		"id", id,
		"algorithm", tr.Algorithm,
		"found", tr.Found,
		"steps", tr.Metrics.Steps,
	)
	c.JSON(http.StatusCreated, summarize(h.reg, id))
}

// GetTrace returns the summary of a stored trace; ?include=steps returns
// the complete trace with every snapshot.
func (h *Handlers) GetTrace(c *gin.Context) {
	st, ok := h.reg.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown trace id"})
		return
	}
	if c.Query("include") == "steps" {
		c.JSON(http.StatusOK, gin.H{
			"summary": summarizeStored(st),
			"trace":   st.trace,
		})
		return
	}
	c.JSON(http.StatusOK, summarizeStored(st))
}

// GetStep returns one snapshot by index, with its narration, for
// random-access playback.
func (h *Handlers) GetStep(c *gin.Context) {
	st, ok := h.reg.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown trace id"})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step index must be an integer"})
		return
	}
	steps := st.trace.Steps
	if index < 0 || index >= len(steps) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "step index out of range",
			"total": len(steps),
		})
		return
	}
	snap := steps[index]
	c.JSON(http.StatusOK, gin.H{
		"index":     index,
		"total":     len(steps),
		"step":      snap,
		"narration": narrate.Step(snap),
	})
}

// resolveScenario turns a request into a validated scenario, loading the
// named preset and applying overrides, or assembling an inline one.
func (h *Handlers) resolveScenario(req *TraceRequest) (*catalog.Scenario, int, error) {
	var s *catalog.Scenario
	if req.Scenario != "" {
		loaded, err := catalog.Load(req.Scenario)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, catalog.ErrUnknownScenario) {
				status = http.StatusNotFound
			}
			return nil, status, err
		}
		s = loaded
	} else {
		s = &catalog.Scenario{
			Name:  "inline",
			Title: "Inline request",
			Kind:  req.Kind,
			Start: req.Start,
			Goal:  req.Goal,
			Grid:  req.Grid,
			Graph: req.Graph,
		}
	}

	if req.Start != "" {
		s.Start = req.Start
	}
	if req.Goal != "" {
		s.Goal = req.Goal
	}
	if req.Algorithm != "" {
		s.Algorithm = req.Algorithm
	}
	if req.Heuristic != "" {
		s.Heuristic = req.Heuristic
	}
	if req.Weight != nil {
		s.Weight = req.Weight
	}

	// Overrides can invalidate a preset, so the gate runs last.
	if err := s.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}

	return s, http.StatusOK, nil
}

func summarize(reg *Registry, id string) TraceSummary {
	st, _ := reg.Get(id)
	return summarizeStored(st)
}

func summarizeStored(st *storedTrace) TraceSummary {
	tr := st.trace
	return TraceSummary{
		ID:        st.id,
		Scenario:  st.scenario,
		Algorithm: tr.Algorithm,
		Heuristic: tr.Heuristic,
		Weight:    tr.Weight,
		Start:     tr.Start,
		Goal:      tr.Goal,
		Found:     tr.Found,
		PathCells: len(tr.Path),
		Metrics:   tr.Metrics,
		CreatedAt: st.created,
	}
}
