package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dharmasatrya/travelnesia/internal/search"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelnesia",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travelnesia",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 1.5, 2, 2.5, 5},
	}, []string{"method", "path"})

	// Search metrics
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelnesia",
		Subsystem: "search",
		Name:      "searches_total",
		Help:      "Searches by mode and how they ended",
	}, []string{"mode", "outcome"})

	OffersReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travelnesia",
		Subsystem: "search",
		Name:      "offers_returned",
		Help:      "Offers left after filtering, per search",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8},
	}, []string{"mode"})

	BookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelnesia",
		Subsystem: "booking",
		Name:      "bookings_total",
		Help:      "Simulated bookings by mode",
	}, []string{"mode"})
)

// Recorder reports search outcomes to the package collectors.
type Recorder struct{}

func (Recorder) ObserveSearch(mode, outcome string, offers int) {
	SearchesTotal.WithLabelValues(mode, outcome).Inc()
	if outcome == search.OutcomeOK {
		OffersReturned.WithLabelValues(mode).Observe(float64(offers))
	}
}

func (Recorder) ObserveBooking(mode string) {
	BookingsTotal.WithLabelValues(mode).Inc()
}

// Middleware records request count and latency using the route template as
// the path label, so ids in the URL do not blow up cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
