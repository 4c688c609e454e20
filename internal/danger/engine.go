// Package danger оценивает риск для человека по набору ситуационных сигналов.
//
// Оценка детерминирована: одинаковый вход всегда даёт одинаковый результат,
// системные часы не используются, время берётся только из переданного timestamp.
package danger

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shenikar/danger_prediction_engine/internal/geo"
	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// NearbyRadiusKm - радиус поиска безопасных зон для результата оценки
const NearbyRadiusKm = 5.0

// Пороги уровней риска
const (
	CriticalThreshold = 75.0
	ElevatedThreshold = 45.0
)

var areaBaselines = [5]float64{0, 6, 10, 14, 20}

var recommendedActions = map[models.RiskLevel][]string{
	models.RiskCritical: {"Trigger SOS now", "Share live location", "Move to nearest safe zone", "Call emergency services"},
	models.RiskElevated: {"Stay on call with a trusted contact", "Change route to a well-lit area", "Head towards a safe zone"},
	models.RiskLow:      {"Stay aware of surroundings", "Keep phone accessible", "Consider sharing route with a friend"},
}

// timestampLayouts - поддерживаемые варианты ISO-8601
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02 15Z07:00",
	"2006-01-02 15",
	"2006-01-02",
}

// SafeZoneFinder - поиск безопасных зон вокруг точки
type SafeZoneFinder interface {
	Query(point *geo.Point, radiusKm float64) []models.NearbySafeZone
}

// Engine - эвристический движок оценки риска. Не имеет изменяемого состояния.
type Engine struct {
	zones    SafeZoneFinder
	keywords KeywordTable
}

// NewEngine создает движок со стандартной таблицей ключевых слов
func NewEngine(zones SafeZoneFinder) *Engine {
	return NewEngineWithKeywords(zones, DefaultKeywords())
}

// NewEngineWithKeywords создает движок с заданной таблицей ключевых слов
func NewEngineWithKeywords(zones SafeZoneFinder, keywords KeywordTable) *Engine {
	return &Engine{zones: zones, keywords: keywords}
}

type accumulator struct {
	sum     float64
	reasons []string
}

func (a *accumulator) add(delta float64, reason string) {
	a.sum += delta
	a.reasons = append(a.reasons, reason)
}

// Evaluate оценивает набор сигналов. Слагаемые добавляются в фиксированном порядке,
// отсутствующие или некорректные сигналы просто пропускаются.
func (e *Engine) Evaluate(signals models.SignalBundle) models.RiskAssessment {
	acc := &accumulator{reasons: make([]string, 0, 8)}
	point, hasPoint := signals.Point()

	e.scoreTimeOfDay(acc, signals.Timestamp)
	e.scoreContext(acc, signals.Context)
	e.scoreHeartRate(acc, signals.HeartRate, signals.RestingBPM)
	e.scoreMotion(acc, signals.Motion)
	e.scoreText(acc, signals.UserText)
	if hasPoint {
		baseline := AreaBaseline(point)
		acc.add(baseline, fmt.Sprintf("area_baseline_%d", int(baseline)))
	}

	score := clamp(roundTo(acc.sum, 1), 0, 100)
	level := LevelFor(score)

	nearby := make([]models.NearbySafeZone, 0)
	if hasPoint && e.zones != nil {
		nearby = e.zones.Query(&point, NearbyRadiusKm)
	}

	return models.RiskAssessment{
		Score:              score,
		Level:              level,
		Reasons:            acc.reasons,
		RecommendedActions: ActionsFor(level),
		NearbySafeZones:    nearby,
	}
}

// Ветки по часу пересекаются: сначала проверяется поздняя ночь,
// поэтому, например, 6 часов утра попадает только во вторую ветку.
func (e *Engine) scoreTimeOfDay(acc *accumulator, ts models.OptionalString) {
	hour, ok := ParseHour(ts)
	if !ok {
		return
	}
	switch {
	case hour >= 22 || hour < 5:
		acc.add(18, "late_night")
	case hour >= 19 || hour < 7:
		acc.add(8, "evening_hours")
	}
}

func (e *Engine) scoreContext(acc *accumulator, ctx models.ContextSignal) {
	if ctx.Lighting.Valid {
		lighting := strings.ToLower(ctx.Lighting.Value)
		if lighting == models.LightingDark || lighting == models.LightingDim {
			acc.add(12, "lighting_"+lighting)
		}
	}
	if ctx.Crowd.Valid && strings.ToLower(ctx.Crowd.Value) == models.CrowdEmpty {
		acc.add(10, "low_crowd_density")
	}
}

func (e *Engine) scoreHeartRate(acc *accumulator, heart, resting models.OptionalFloat) {
	if !heart.Valid || !resting.Valid || resting.Value <= 0 {
		return
	}
	pct := (heart.Value - resting.Value) / resting.Value
	switch {
	case pct >= 0.60:
		acc.add(28, "heart_rate_spike_60pct_plus")
	case pct >= 0.35:
		acc.add(18, "heart_rate_spike_35pct_plus")
	case pct >= 0.20:
		acc.add(10, "heart_rate_spike_20pct_plus")
	}
}

func (e *Engine) scoreMotion(acc *accumulator, motion models.MotionSignal) {
	if motion.Fall {
		acc.add(35, "fall_detected")
	}
	if motion.Shake {
		acc.add(10, "device_shake")
	}
	if motion.SpeedKmh.Valid && motion.SpeedKmh.Value > 12 {
		acc.add(8, "high_speed")
	}
}

func (e *Engine) scoreText(acc *accumulator, text models.OptionalString) {
	if !text.Valid {
		return
	}
	switch e.keywords.Match(text.Value) {
	case TierImmediateDanger:
		acc.add(40, "text_immediate_danger_keywords")
	case TierUnease:
		acc.add(15, "text_unease_keywords")
	}
}

// AreaBaseline - базовый риск района: floor(|lat*7 + lon*13|) mod 5 по таблице [0, 6, 10, 14, 20]
func AreaBaseline(p geo.Point) float64 {
	v := math.Abs(p.Lat*7 + p.Lon*13)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return areaBaselines[0]
	}
	bucket := int(math.Mod(math.Floor(v), 5))
	return areaBaselines[bucket]
}

// ParseHour извлекает час (0-23) из ISO-8601 метки времени в её собственном часовом поясе
func ParseHour(ts models.OptionalString) (int, bool) {
	if !ts.Valid {
		return 0, false
	}
	raw := strings.TrimSpace(ts.Value)
	if raw == "" {
		return 0, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Hour(), true
		}
	}
	return 0, false
}

// LevelFor возвращает уровень риска для балла
func LevelFor(score float64) models.RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return models.RiskCritical
	case score >= ElevatedThreshold:
		return models.RiskElevated
	default:
		return models.RiskLow
	}
}

// ActionsFor возвращает рекомендуемые действия для уровня (копию, порядок важен)
func ActionsFor(level models.RiskLevel) []string {
	return slices.Clone(recommendedActions[level])
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
