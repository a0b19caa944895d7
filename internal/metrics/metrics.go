package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AIRequests counts gateway calls by request type and outcome.
var AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "swiftsites_ai_requests_total",
	Help: "Text-generation gateway requests by type and outcome.",
}, []string{"type", "outcome"})

// PreferencesSubmitted counts successfully persisted handoff records.
var PreferencesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "swiftsites_preferences_submitted_total",
	Help: "Handoff records successfully persisted.",
})
