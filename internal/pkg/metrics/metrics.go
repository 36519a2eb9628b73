package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AttemptsFinished counts registration attempts by the state they ended in.
	AttemptsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "registrar",
		Name:      "attempts_finished_total",
		Help:      "Total geofence registration attempts by final state",
	}, []string{"state"})

	// AttemptsDegraded counts attempts that finished without background location access.
	AttemptsDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "registrar",
		Name:      "attempts_degraded_total",
		Help:      "Total attempts that continued after background location was denied",
	})

	GeofenceRegistrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "geofence",
		Name:      "registrations_total",
		Help:      "Total geofence registrations submitted to the platform",
	}, []string{"source", "result"})

	GeofenceEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "geofence",
		Name:      "events_total",
		Help:      "Total geofence transition events by outcome",
	}, []string{"outcome"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Total reminder notifications by result",
	}, []string{"result"})

	RepositoryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "georeminder",
		Subsystem: "repository",
		Name:      "errors_total",
		Help:      "Total repository operations that returned an Error result",
	}, []string{"operation"})
)

// Handler returns the Prometheus /metrics handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
