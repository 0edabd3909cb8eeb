package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	// Business metrics
	RowsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_rows_created_total",
		Help: "Total rows created, by entity",
	}, []string{"entity"})

	RowsUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_rows_updated_total",
		Help: "Total rows updated, by entity",
	}, []string{"entity"})

	RowsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_rows_deleted_total",
		Help: "Total rows deleted, by entity",
	}, []string{"entity"})
)
