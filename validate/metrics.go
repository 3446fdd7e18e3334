package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implements HasValidate or HasValidateWithContext.
	//   - has_error: "true" if validation failed.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validation_calls_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime records how long self-validation took, by Go type.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "validation_time_millis",
		Help:    "The time it takes to validate, in milliseconds",
		Buckets: []float64{0.01, 0.1, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"type", "has_error"})
)

// init pre-creates every counter series so dashboards see zeros instead of gaps.
func init() {
	validationsTotal.WithLabelValues("true", "true").Add(0)
	validationsTotal.WithLabelValues("false", "true").Add(0)
	validationsTotal.WithLabelValues("true", "false").Add(0)
	validationsTotal.WithLabelValues("false", "false").Add(0)
}
