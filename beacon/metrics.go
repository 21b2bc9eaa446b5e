package beacon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "beaconproofs_verifications_total",
	Help: "Count of verification outcomes by check and result.",
}, []string{"check", "result"})

func recordVerification(check string, matched bool) {
	result := "match"
	if !matched {
		result = "mismatch"
	}
	verificationsTotal.WithLabelValues(check, result).Inc()
}
