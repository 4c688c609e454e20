package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/danger_prediction_engine/internal/config"
	"github.com/shenikar/danger_prediction_engine/internal/geo"
	"github.com/shenikar/danger_prediction_engine/internal/models"
	"github.com/shenikar/danger_prediction_engine/internal/service"
)

const (
	ServiceName    = "Danger Prediction Engine"
	ServiceVersion = "1.0.0"
)

type Handler struct {
	dangerService service.DangerService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
	now           func() time.Time
}

func NewHandler(dangerService service.DangerService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dangerService: dangerService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
		now:           time.Now,
	}
}

// @Summary Predict danger level
// @Description Evaluate situational signals and return a risk score, level, reasons, actions and nearby safe zones. Malformed optional fields are ignored. Requires API key.
// @Tags Prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param signals body models.SignalBundle false "Signal bundle"
// @Success 200 {object} PredictionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	log := h.logger.WithField("method", "predict")

	var signals models.SignalBundle
	if err := c.ShouldBindJSON(&signals); err != nil {
		// тело не является объектом сигналов - оцениваем пустой набор
		log.WithError(err).Debug("Request body ignored")
		signals = models.SignalBundle{}
	}

	assessment := h.dangerService.Predict(c.Request.Context(), signals)
	c.JSON(http.StatusOK, ModelToPredictionResponse(assessment))
}

// @Summary List safe zones
// @Description List verified safe zones. With lat and lon, only zones within radius_km are returned, sorted by distance.
// @Tags Safe zones
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param radius_km query number false "Search radius in km" default(5)
// @Success 200 {object} SafeZonesResponse
// @Failure 400 {object} map[string]string "Invalid lat/lon/radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /safe-zones [get]
func (h *Handler) listSafeZones(c *gin.Context) {
	log := h.logger.WithField("method", "listSafeZones")

	lat, hasLat, errLat := parseFloatQuery(c, "lat")
	lon, hasLon, errLon := parseFloatQuery(c, "lon")
	radius, hasRadius, errRadius := parseFloatQuery(c, "radius_km")
	if errLat != nil || errLon != nil || errRadius != nil {
		log.WithError(errors.Join(errLat, errLon, errRadius)).Warn("Invalid safe zone query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lon/radius"})
		return
	}
	if !hasRadius {
		radius = h.cfg.SafeZonesDefaultRadiusKm
	}

	var point *geo.Point
	if hasLat && hasLon {
		point = &geo.Point{Lat: lat, Lon: lon}
	}

	zones, err := h.dangerService.ListSafeZones(c.Request.Context(), point, radius)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRadius) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lon/radius"})
			return
		}
		log.WithError(err).Error("Failed to list safe zones in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SafeZonesResponse{
		Count: len(zones),
		Items: ModelsToSafeZoneResponses(zones),
	})
}

// @Summary Raise an SOS alert
// @Description Queue an SOS alert for delivery to the notifier. The response echoes the request payload as sent. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body AlertRequest false "Alert"
// @Success 202 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alert [post]
func (h *Handler) raiseAlert(c *gin.Context) {
	var input AlertRequest
	log := h.logger.WithField("method", "raiseAlert")

	// пустое тело допустимо - это алерт с причиной по умолчанию
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAlertModel(input)
	if err := h.dangerService.RaiseAlert(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to queue alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, AlertResponse{
		Status: "queued",
		ID:     model.ID,
		Echo:   rawPayload(c),
	})
}

// rawPayload возвращает тело запроса в исходном виде, включая поля вне AlertRequest
func rawPayload(c *gin.Context) map[string]any {
	payload := map[string]any{}
	body, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return payload
	}
	raw, _ := body.([]byte)
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return map[string]any{}
	}
	return payload
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Name:    ServiceName,
		Version: ServiceVersion,
		TimeUTC: h.now().UTC().Format(time.RFC3339),
	})
}

// parseFloatQuery разбирает необязательный числовой query-параметр
func parseFloatQuery(c *gin.Context, key string) (float64, bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, strconv.ErrSyntax
	}
	return v, true, nil
}
