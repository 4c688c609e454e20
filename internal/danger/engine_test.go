package danger

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/danger_prediction_engine/internal/geo"
	"github.com/shenikar/danger_prediction_engine/internal/models"
	"github.com/shenikar/danger_prediction_engine/internal/safezone"
)

func newTestEngine() *Engine {
	return NewEngine(safezone.NewDefaultDirectory())
}

// evaluateJSON разбирает тело запроса так же, как HTTP-слой
func evaluateJSON(t *testing.T, e *Engine, body string) models.RiskAssessment {
	t.Helper()
	var signals models.SignalBundle
	require.NoError(t, json.Unmarshal([]byte(body), &signals))
	return e.Evaluate(signals)
}

func TestEvaluate_EmptyBundle(t *testing.T) {
	res := newTestEngine().Evaluate(models.SignalBundle{})

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, models.RiskLow, res.Level)
	assert.NotNil(t, res.Reasons)
	assert.Empty(t, res.Reasons)
	assert.NotNil(t, res.NearbySafeZones)
	assert.Empty(t, res.NearbySafeZones)
	assert.Equal(t, []string{"Stay aware of surroundings", "Keep phone accessible", "Consider sharing route with a friend"}, res.RecommendedActions)
}

func TestEvaluate_NightInKolkata(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{
		"lat": 22.5726, "lon": 88.3639,
		"timestamp": "2024-01-01T23:30:00Z",
		"context": {"lighting": "dark", "crowd": "empty"}
	}`)

	// 18 + 12 + 10 + базовый риск района (корзина 1 -> 6)
	assert.Equal(t, 46.0, res.Score)
	assert.Equal(t, models.RiskElevated, res.Level)
	assert.Equal(t, []string{"late_night", "lighting_dark", "low_crowd_density", "area_baseline_6"}, res.Reasons)
	assert.Equal(t, []string{"Stay on call with a trusted contact", "Change route to a well-lit area", "Head towards a safe zone"}, res.RecommendedActions)

	require.Len(t, res.NearbySafeZones, 5)
	assert.Equal(t, "kol-police-helpdesk", res.NearbySafeZones[0].ID)
	require.NotNil(t, res.NearbySafeZones[0].DistanceKm)
}

func TestEvaluate_FallOnly(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"motion": {"fall": true}}`)

	assert.Equal(t, 35.0, res.Score)
	assert.Equal(t, models.RiskLow, res.Level)
	assert.Equal(t, []string{"fall_detected"}, res.Reasons)
	assert.Empty(t, res.NearbySafeZones)
}

func TestEvaluate_ImmediateDangerText(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"user_text": "help someone is following me"}`)

	assert.Equal(t, 40.0, res.Score)
	assert.Equal(t, models.RiskLow, res.Level)
	assert.Equal(t, []string{"text_immediate_danger_keywords"}, res.Reasons)
}

func TestEvaluate_KeywordTiersAreExclusive(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"user_text": "I am SCARED and someone is Following me"}`)

	assert.Equal(t, 40.0, res.Score)
	assert.Equal(t, []string{"text_immediate_danger_keywords"}, res.Reasons)

	res = evaluateJSON(t, newTestEngine(), `{"user_text": "walking alone, feeling anxious"}`)
	assert.Equal(t, 15.0, res.Score)
	assert.Equal(t, []string{"text_unease_keywords"}, res.Reasons)

	res = evaluateJSON(t, newTestEngine(), `{"user_text": "testing prediction from settings form"}`)
	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Reasons)
}

func TestEvaluate_HeartRateTiers(t *testing.T) {
	tests := []struct {
		name    string
		heart   float64
		resting float64
		score   float64
		reasons []string
	}{
		{"double resting", 160, 80, 28, []string{"heart_rate_spike_60pct_plus"}},
		{"61 percent", 161, 100, 28, []string{"heart_rate_spike_60pct_plus"}},
		{"exactly 60 percent", 160, 100, 28, []string{"heart_rate_spike_60pct_plus"}},
		{"35 percent", 135, 100, 18, []string{"heart_rate_spike_35pct_plus"}},
		{"20 percent", 120, 100, 10, []string{"heart_rate_spike_20pct_plus"}},
		{"below threshold", 119, 100, 0, []string{}},
		{"below resting", 60, 100, 0, []string{}},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Evaluate(models.SignalBundle{
				HeartRate:  models.Float(tt.heart),
				RestingBPM: models.Float(tt.resting),
			})
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.reasons, res.Reasons)
		})
	}
}

func TestEvaluate_HeartRateNeedsPositiveResting(t *testing.T) {
	e := newTestEngine()

	res := e.Evaluate(models.SignalBundle{HeartRate: models.Float(160), RestingBPM: models.Float(0)})
	assert.Empty(t, res.Reasons)

	res = e.Evaluate(models.SignalBundle{HeartRate: models.Float(160)})
	assert.Empty(t, res.Reasons)
}

func TestEvaluate_TimeOfDayBranches(t *testing.T) {
	e := newTestEngine()
	for hour := 0; hour < 24; hour++ {
		ts := fmt.Sprintf("2024-03-10T%02d:15:00Z", hour)
		res := e.Evaluate(models.SignalBundle{Timestamp: models.String(ts)})

		switch {
		case hour >= 22 || hour < 5:
			assert.Equal(t, []string{"late_night"}, res.Reasons, "hour %d", hour)
			assert.Equal(t, 18.0, res.Score, "hour %d", hour)
		case hour >= 19 || hour < 7:
			assert.Equal(t, []string{"evening_hours"}, res.Reasons, "hour %d", hour)
			assert.Equal(t, 8.0, res.Score, "hour %d", hour)
		default:
			assert.Empty(t, res.Reasons, "hour %d", hour)
		}
	}
}

func TestEvaluate_HourUsesTimestampOffset(t *testing.T) {
	// 23:30 по местному времени, хотя в UTC это 18:00
	res := newTestEngine().Evaluate(models.SignalBundle{Timestamp: models.String("2024-01-01T23:30:00+05:30")})

	assert.Equal(t, []string{"late_night"}, res.Reasons)
}

func TestParseHour_ISOVariants(t *testing.T) {
	e := newTestEngine()

	for _, ts := range []string{
		"2024-01-01T23:30:00Z",
		"2024-01-01T23:30:00.123456+05:30",
		"2024-01-01T23:30+05:30",
		"2024-01-01T23:30Z",
		"2024-01-01T23:30",
		"2024-01-01T23",
		"2024-01-01T23Z",
		"2024-01-01 23:30Z",
		"2024-01-01 23:30:15-03:00",
		"2024-01-01 23",
	} {
		t.Run(ts, func(t *testing.T) {
			hour, ok := ParseHour(models.String(ts))
			require.True(t, ok)
			assert.Equal(t, 23, hour)

			res := e.Evaluate(models.SignalBundle{Timestamp: models.String(ts)})
			assert.Equal(t, 18.0, res.Score)
			assert.Equal(t, []string{"late_night"}, res.Reasons)
		})
	}
}

func TestParseHour_DateOnlyIsMidnight(t *testing.T) {
	hour, ok := ParseHour(models.String("2024-01-01"))

	require.True(t, ok)
	assert.Equal(t, 0, hour)
}

func TestEvaluate_UnparsableTimestampSkipped(t *testing.T) {
	e := newTestEngine()

	for _, ts := range []string{"not a date", "", "23:30", "2024-13-45T99:00:00Z", "2024-01-01T", "2024-01-01T23:3"} {
		res := e.Evaluate(models.SignalBundle{Timestamp: models.String(ts)})
		assert.Empty(t, res.Reasons, ts)
	}
}

func TestEvaluate_MotionTermsIndependent(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"motion": {"fall": true, "shake": true, "speed_kmh": 12.5}}`)

	assert.Equal(t, 53.0, res.Score)
	assert.Equal(t, models.RiskElevated, res.Level)
	assert.Equal(t, []string{"fall_detected", "device_shake", "high_speed"}, res.Reasons)
}

func TestEvaluate_SpeedBoundaryIsExclusive(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"motion": {"speed_kmh": 12}}`)

	assert.Empty(t, res.Reasons)
}

func TestEvaluate_MalformedFieldsDegrade(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{
		"lat": "north", "lon": 88.3639,
		"heart_rate": "fast", "resting_bpm": 70,
		"motion": {"speed_kmh": "quick", "fall": false},
		"context": "dark",
		"user_text": 42,
		"timestamp": 1700000000
	}`)

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Reasons)
	assert.Empty(t, res.NearbySafeZones)
}

func TestEvaluate_NumericStringsAccepted(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{"heart_rate": "160", "resting_bpm": " 80 ", "motion": {"speed_kmh": "20"}}`)

	assert.Equal(t, []string{"heart_rate_spike_60pct_plus", "high_speed"}, res.Reasons)
	assert.Equal(t, 36.0, res.Score)
}

func TestEvaluate_LightingValues(t *testing.T) {
	e := newTestEngine()

	res := evaluateJSON(t, e, `{"context": {"lighting": "Dim"}}`)
	assert.Equal(t, []string{"lighting_dim"}, res.Reasons)
	assert.Equal(t, 12.0, res.Score)

	for _, v := range []string{"normal", "bright", "unknown", "few", ""} {
		res = e.Evaluate(models.SignalBundle{Context: models.ContextSignal{
			Lighting: models.String(v),
			Crowd:    models.String(v),
		}})
		assert.Empty(t, res.Reasons, v)
	}
}

func TestEvaluate_ScoreClampedAndCritical(t *testing.T) {
	res := evaluateJSON(t, newTestEngine(), `{
		"lat": 22.5726, "lon": 88.3639,
		"timestamp": "2024-01-01T02:00:00Z",
		"heart_rate": 180, "resting_bpm": 70,
		"motion": {"fall": true, "shake": true, "speed_kmh": 30},
		"context": {"lighting": "dark", "crowd": "empty"},
		"user_text": "SOS attack"
	}`)

	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, models.RiskCritical, res.Level)
	assert.Equal(t, []string{
		"late_night",
		"lighting_dark",
		"low_crowd_density",
		"heart_rate_spike_60pct_plus",
		"fall_detected",
		"device_shake",
		"high_speed",
		"text_immediate_danger_keywords",
		"area_baseline_6",
	}, res.Reasons)
	assert.Equal(t, []string{"Trigger SOS now", "Share live location", "Move to nearest safe zone", "Call emergency services"}, res.RecommendedActions)
}

func TestEvaluate_ZeroBaselineStillReported(t *testing.T) {
	// |0*7 + 0*13| = 0 -> корзина 0
	res := newTestEngine().Evaluate(models.SignalBundle{Lat: models.Float(0), Lon: models.Float(0)})

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, []string{"area_baseline_0"}, res.Reasons)
	assert.Empty(t, res.NearbySafeZones)
}

func TestEvaluate_OnlyOneCoordinateIsAbsent(t *testing.T) {
	res := newTestEngine().Evaluate(models.SignalBundle{Lat: models.Float(22.5726)})

	assert.Empty(t, res.Reasons)
	assert.Empty(t, res.NearbySafeZones)
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := newTestEngine()
	body := `{"lat": 22.5726, "lon": 88.3639, "timestamp": "2024-01-01T20:00:00Z", "user_text": "feeling unsafe"}`

	first, err := json.Marshal(evaluateJSON(t, e, body))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := json.Marshal(evaluateJSON(t, e, body))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}

func TestEvaluate_DoesNotMutateActions(t *testing.T) {
	e := newTestEngine()

	res := e.Evaluate(models.SignalBundle{})
	res.RecommendedActions[0] = "mutated"

	assert.Equal(t, "Stay aware of surroundings", e.Evaluate(models.SignalBundle{}).RecommendedActions[0])
}

func TestEvaluate_UsesFixedRadius(t *testing.T) {
	finder := &recordingFinder{}
	e := NewEngine(finder)

	e.Evaluate(models.SignalBundle{Lat: models.Float(1), Lon: models.Float(2)})

	require.Len(t, finder.calls, 1)
	assert.Equal(t, NearbyRadiusKm, finder.calls[0].radius)
	assert.Equal(t, geo.Point{Lat: 1, Lon: 2}, finder.calls[0].point)
}

func TestAreaBaseline(t *testing.T) {
	tests := []struct {
		point geo.Point
		want  float64
	}{
		{geo.Point{Lat: 0, Lon: 0}, 0},
		{geo.Point{Lat: 22.5726, Lon: 88.3639}, 6},
		{geo.Point{Lat: 0, Lon: 1}, 14},   // 13 -> 3
		{geo.Point{Lat: 1, Lon: 1}, 0},    // 20 -> 0
		{geo.Point{Lat: -1, Lon: -1}, 0},  // |-20| -> 0
		{geo.Point{Lat: 2, Lon: 0}, 20},   // 14 -> 4
		{geo.Point{Lat: 0.3, Lon: 0}, 10}, // 2.1 -> 2
		{geo.Point{Lat: 0.15, Lon: 0}, 6}, // 1.05 -> 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AreaBaseline(tt.point), "%+v", tt.point)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, models.RiskLow, LevelFor(0))
	assert.Equal(t, models.RiskLow, LevelFor(44.9))
	assert.Equal(t, models.RiskElevated, LevelFor(45))
	assert.Equal(t, models.RiskElevated, LevelFor(74.9))
	assert.Equal(t, models.RiskCritical, LevelFor(75))
	assert.Equal(t, models.RiskCritical, LevelFor(100))
}

type finderCall struct {
	point  geo.Point
	radius float64
}

type recordingFinder struct {
	calls []finderCall
}

func (f *recordingFinder) Query(point *geo.Point, radiusKm float64) []models.NearbySafeZone {
	f.calls = append(f.calls, finderCall{point: *point, radius: radiusKm})
	return []models.NearbySafeZone{}
}
