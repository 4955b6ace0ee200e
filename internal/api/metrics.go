package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts HTTP requests.
	// Labels: route (the gin route pattern), status (HTTP status code)
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "middlemath",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests",
	}, []string{"route", "status"})

	// requestDuration measures request latency.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "middlemath",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	}, []string{"route"})

	// problemsGenerated counts served problems.
	// Labels: grade, topic
	problemsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "middlemath",
		Subsystem: "problems",
		Name:      "generated_total",
		Help:      "Total problems generated",
	}, []string{"grade", "topic"})

	// answersChecked counts answer checks.
	// Labels: result (correct, incorrect)
	answersChecked = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "middlemath",
		Subsystem: "answers",
		Name:      "checked_total",
		Help:      "Total answer checks by result",
	}, []string{"result"})
)
