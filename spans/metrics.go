package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var spanWithoutTracerCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "typecheck",
		Subsystem: "spans",
		Name:      "without_tracer_total",
		Help:      "Total number of span executions without a tracer in context",
	},
	[]string{"span_name"},
)
