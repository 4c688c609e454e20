// Package metrics собирает Prometheus-метрики оценок риска, поиска зон, алертов и HTTP-запросов.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// Режимы поиска безопасных зон
const (
	QueryModeCatalog = "catalog"
	QueryModeRadius  = "radius"
)

// Результаты постановки алерта в очередь
const (
	AlertQueued = "queued"
	AlertFailed = "failed"
)

// Collector - набор метрик сервиса
type Collector struct {
	gatherer prometheus.Gatherer

	Predictions     *prometheus.CounterVec
	RiskScore       prometheus.Histogram
	Reasons         *prometheus.CounterVec
	SafeZoneQueries *prometheus.CounterVec
	Alerts          *prometheus.CounterVec

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewCollector регистрирует метрики в reg. Если reg == nil, используется глобальный реестр.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "danger_predictions_total",
			Help: "Total number of risk assessments, labeled by risk level.",
		}, []string{"level"}),
		RiskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "danger_risk_score",
			Help:    "Distribution of risk scores.",
			Buckets: []float64{0, 10, 20, 30, 45, 60, 75, 90, 100},
		}),
		Reasons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "danger_reasons_total",
			Help: "Number of times each heuristic contributed to a risk score.",
		}, []string{"reason"}),
		SafeZoneQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safe_zone_queries_total",
			Help: "Safe zone lookups, labeled by mode (catalog or radius).",
		}, []string{"mode"}),
		Alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sos_alerts_total",
			Help: "SOS alerts, labeled by enqueue result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	for _, col := range []prometheus.Collector{
		c.Predictions, c.RiskScore, c.Reasons, c.SafeZoneQueries, c.Alerts,
		c.HTTPRequests, c.HTTPRequestDuration,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObservePrediction учитывает результат оценки риска
func (c *Collector) ObservePrediction(a models.RiskAssessment) {
	if c == nil {
		return
	}
	c.Predictions.WithLabelValues(string(a.Level)).Inc()
	c.RiskScore.Observe(a.Score)
	for _, r := range a.Reasons {
		c.Reasons.WithLabelValues(r).Inc()
	}
}

// ObserveSafeZoneQuery учитывает поиск безопасных зон
func (c *Collector) ObserveSafeZoneQuery(mode string) {
	if c == nil {
		return
	}
	c.SafeZoneQueries.WithLabelValues(mode).Inc()
}

// ObserveAlert учитывает результат постановки алерта в очередь
func (c *Collector) ObserveAlert(result string) {
	if c == nil {
		return
	}
	c.Alerts.WithLabelValues(result).Inc()
}

// GinMiddleware возвращает middleware, считающее запросы и их длительность.
// Для nil-коллектора middleware только передает управление дальше.
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	if c == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		c.HTTPRequests.WithLabelValues(ctx.Request.Method, path, status).Inc()
		c.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
