package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/danger_prediction_engine/internal/alert"
	"github.com/shenikar/danger_prediction_engine/internal/geo"
	"github.com/shenikar/danger_prediction_engine/internal/metrics"
	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// DefaultAlertReason - причина алерта, если клиент её не указал
const DefaultAlertReason = "manual_sos"

// ErrInvalidRadius возвращается при отрицательном или нечисловом радиусе поиска
var ErrInvalidRadius = errors.New("invalid radius")

// RiskEvaluator определяет контракт движка оценки риска
type RiskEvaluator interface {
	Evaluate(signals models.SignalBundle) models.RiskAssessment
}

// SafeZoneDirectory определяет контракт каталога безопасных зон
type SafeZoneDirectory interface {
	Query(point *geo.Point, radiusKm float64) []models.NearbySafeZone
}

//go:generate mockgen -source=danger.go -destination=mocks/mock_danger.go -package=mocks

// DangerService определяет контракт бизнес-логики оценки опасности и SOS-алертов
type DangerService interface {
	Predict(ctx context.Context, signals models.SignalBundle) models.RiskAssessment
	ListSafeZones(ctx context.Context, point *geo.Point, radiusKm float64) ([]models.NearbySafeZone, error)
	RaiseAlert(ctx context.Context, alert *models.Alert) error
}

type dangerService struct {
	engine    RiskEvaluator
	zones     SafeZoneDirectory
	publisher alert.Publisher
	metrics   *metrics.Collector
	logger    *logrus.Logger
	now       func() time.Time
}

func NewDangerService(
	engine RiskEvaluator,
	zones SafeZoneDirectory,
	publisher alert.Publisher,
	collector *metrics.Collector,
	logger *logrus.Logger,
) DangerService {
	return &dangerService{
		engine:    engine,
		zones:     zones,
		publisher: publisher,
		metrics:   collector,
		logger:    logger,
		now:       time.Now,
	}
}

// Predict оценивает риск по набору сигналов
func (s *dangerService) Predict(ctx context.Context, signals models.SignalBundle) models.RiskAssessment {
	_, hasPoint := signals.Point()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "danger",
		"method":    "Predict",
		"has_point": hasPoint,
	})

	assessment := s.engine.Evaluate(signals)
	s.metrics.ObservePrediction(assessment)

	log.WithFields(logrus.Fields{
		"score":        assessment.Score,
		"level":        assessment.Level,
		"reasons":      len(assessment.Reasons),
		"nearby_zones": len(assessment.NearbySafeZones),
	}).Info("Risk assessed")
	return assessment
}

// ListSafeZones возвращает безопасные зоны вокруг точки или весь каталог, если точка не задана
func (s *dangerService) ListSafeZones(ctx context.Context, point *geo.Point, radiusKm float64) ([]models.NearbySafeZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "danger",
		"method":    "ListSafeZones",
		"radius_km": radiusKm,
	})

	if math.IsNaN(radiusKm) || radiusKm < 0 {
		log.Warn("Rejected safe zone query with invalid radius")
		return nil, fmt.Errorf("service: radius %v: %w", radiusKm, ErrInvalidRadius)
	}

	mode := metrics.QueryModeCatalog
	if point != nil {
		mode = metrics.QueryModeRadius
	}
	zones := s.zones.Query(point, radiusKm)
	s.metrics.ObserveSafeZoneQuery(mode)

	log.WithFields(logrus.Fields{"mode": mode, "count": len(zones)}).Debug("Safe zones listed")
	return zones, nil
}

// RaiseAlert присваивает алерту идентификатор и ставит его в очередь доставки
func (s *dangerService) RaiseAlert(ctx context.Context, a *models.Alert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Reason == "" {
		a.Reason = DefaultAlertReason
	}
	if a.Latitude == nil || a.Longitude == nil {
		a.Latitude, a.Longitude = nil, nil
	}
	a.QueuedAt = s.now().UTC()

	log := s.logger.WithFields(logrus.Fields{
		"service":  "danger",
		"method":   "RaiseAlert",
		"alert_id": a.ID,
		"reason":   a.Reason,
	})
	log.Info("Queueing SOS alert")

	if err := s.publisher.Publish(ctx, *a); err != nil {
		s.metrics.ObserveAlert(metrics.AlertFailed)
		log.WithError(err).Error("Failed to publish alert")
		return fmt.Errorf("service: could not queue alert: %w", err)
	}

	s.metrics.ObserveAlert(metrics.AlertQueued)
	log.Info("Alert queued successfully")
	return nil
}
