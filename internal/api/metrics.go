package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phonefinder_requests_total",
		Help: "HTTP requests served, by path and status code.",
	}, []string{"path", "status"})

	recommendationsReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phonefinder_recommendations_returned_total",
		Help: "Phone recommendations returned across all requests.",
	})

	fallbackActivations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phonefinder_fallback_activations_total",
		Help: "Requests where the mid-range fallback filter was applied.",
	})
)
