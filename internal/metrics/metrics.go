// Package metrics defines the Prometheus collectors exported by the server.
//
// Collectors are registered on the default registry via promauto and are
// safe for concurrent use from request handlers.
//
//   - boruto_http_requests_total{route, status} (Counter)
//   - boruto_http_request_duration_seconds{route} (Histogram)
//   - boruto_page_requests_total{outcome} (Counter)
//   - boruto_hero_search_results (Histogram)
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for PageRequests.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid_input"
	OutcomeOutOfRange = "out_of_range"
)

// unmatchedRoute labels requests that hit the NoRoute handler so unknown
// paths do not blow up label cardinality.
const unmatchedRoute = "unmatched"

var (
	// HTTPRequests counts handled requests by route template and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boruto_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "status"},
	)

	// HTTPDuration tracks request latency by route template.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boruto_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// PageRequests counts pagination lookups by outcome.
	PageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boruto_page_requests_total",
			Help: "Total number of hero page lookups by outcome",
		},
		[]string{"outcome"},
	)

	// SearchResults records how many heroes each search returned.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "boruto_hero_search_results",
			Help:    "Number of heroes returned per search",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)
)

// GinMiddleware records HTTPRequests and HTTPDuration for every request.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
