package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "Total number of catalog searches",
	}, []string{"adapter"})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_search_results",
		Help:    "Number of books matched by a search",
		Buckets: []float64{0, 1, 5, 10, 36, 100, 500},
	})

	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_lookups_total",
		Help: "Total number of book lookups by outcome",
	}, []string{"adapter", "outcome"})

	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total number of HTTP requests to the catalog API",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)
