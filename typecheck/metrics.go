package typecheck

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK                = "ok"
	outcomeParameterMismatch = "parameter_mismatch"
	outcomeReturnMismatch    = "return_mismatch"
	outcomeResolveError      = "resolve_error"
	outcomeCallError         = "call_error"
	outcomeSkipped           = "skipped"
)

var (
	// callsTotal counts validated calls.
	//
	// Labels:
	//   - function: the validator name.
	//   - outcome: ok, parameter_mismatch, return_mismatch, resolve_error,
	//     call_error (the wrapped function failed) or skipped.
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "typecheck_calls_total",
		Help: "The total number of calls made through a type-checking validator",
	}, []string{"function", "outcome"})

	signatureResolutions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "typecheck_signature_resolutions_total",
		Help: "The total number of signature lookups, by whether the cache served them",
	}, []string{"cached"})
)

func recordCall(function, outcome string) {
	callsTotal.WithLabelValues(function, outcome).Inc()
}

func recordResolution(cached bool) {
	signatureResolutions.WithLabelValues(strconv.FormatBool(cached)).Inc()
}
