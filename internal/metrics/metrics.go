package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce sync.Once

	requestsTotal          *prometheus.CounterVec
	requestDurationSeconds *prometheus.HistogramVec
)

func Init() {
	initOnce.Do(register)
}

func register() {
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudforge",
			Name:      "requests_total",
			Help:      "Total number of handled API requests.",
		},
		[]string{"route", "method", "status"},
	)
	requestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudforge",
			Name:      "request_duration_seconds",
			Help:      "Histogram of API request durations in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)
	prometheus.MustRegister(requestsTotal, requestDurationSeconds)
}

// Middleware records a counter and duration sample per request, labeled by
// route template so path parameters don't explode cardinality.
func Middleware() gin.HandlerFunc {
	Init()

	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestsTotal.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		requestDurationSeconds.WithLabelValues(route, ctx.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
