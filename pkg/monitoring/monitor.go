package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// IndexSyncCounter 向量索引写入结果（upsert / delete / resync）
	IndexSyncCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "index_sync_operations_total",
			Help: "Total number of vector index sync operations",
		},
		[]string{"op", "result"},
	)

	OracleRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_requests_total",
			Help: "Total number of text generation requests",
		},
		[]string{"kind", "result"},
	)

	OracleRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Duration of text generation requests",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(IndexSyncCounter)
		prometheus.MustRegister(OracleRequestCounter)
		prometheus.MustRegister(OracleRequestDuration)
	})
}

// ResultLabel 将错误折叠为 ok / error 标签
func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func ObserveIndexSync(op string, err error) {
	IndexSyncCounter.WithLabelValues(op, ResultLabel(err)).Inc()
}

func ObserveOracle(kind string, start time.Time, err error) {
	OracleRequestCounter.WithLabelValues(kind, ResultLabel(err)).Inc()
	OracleRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
