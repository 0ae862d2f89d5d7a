package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dealsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "dcs",
	Subsystem: "deals",
	Name:      "created_total",
	Help:      "Total deals recorded through the API.",
})

var dealsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "dcs",
	Subsystem: "deals",
	Name:      "deleted_total",
	Help:      "Total deals deleted through the API.",
})

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dcs",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

var httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "dcs",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})
