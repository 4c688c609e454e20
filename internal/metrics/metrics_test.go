package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/danger_prediction_engine/internal/models"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	return c
}

func TestObservePrediction(t *testing.T) {
	c := newTestCollector(t)

	c.ObservePrediction(models.RiskAssessment{
		Score:   46,
		Level:   models.RiskElevated,
		Reasons: []string{"late_night", "lighting_dark"},
	})
	c.ObservePrediction(models.RiskAssessment{Score: 0, Level: models.RiskLow, Reasons: []string{}})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Predictions.WithLabelValues("elevated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Predictions.WithLabelValues("low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Reasons.WithLabelValues("late_night")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.Predictions))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObservePrediction(models.RiskAssessment{Level: models.RiskLow})
		c.ObserveSafeZoneQuery(QueryModeRadius)
		c.ObserveAlert(AlertQueued)
	})
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := newTestCollector(t)

	router := gin.New()
	router.Use(c.GinMiddleware())
	router.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(c.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{method="GET",path="/ping",status="200"} 1`))
}

func TestNilCollectorMiddlewarePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var c *Collector

	router := gin.New()
	router.Use(c.GinMiddleware())
	router.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	})
	assert.Equal(t, http.StatusTeapot, w.Code)
}
