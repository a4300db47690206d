package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// FeedFanout observes how many followed authors a feed query resolves.
	FeedFanout = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "showcase_feed_fanout_authors",
		Help:    "Number of followed authors resolved per feed request",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates (once) the Fiber Prometheus middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
