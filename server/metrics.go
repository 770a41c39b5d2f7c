package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tracesBuiltTotal counts built traces by algorithm and outcome.
	tracesBuiltTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glassbox_traces_built_total",
		Help: "Traces built through the API, by algorithm and whether the goal was found",
	}, []string{"algorithm", "found"})

	// traceSteps tracks how many snapshots a built trace carries.
	traceSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glassbox_trace_steps",
		Help:    "Snapshots per built trace",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000},
	})

	// traceBuildErrors counts rejected build requests by reason.
	traceBuildErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glassbox_trace_build_errors_total",
		Help: "Trace build requests rejected, by reason",
	}, []string{"reason"})
)
