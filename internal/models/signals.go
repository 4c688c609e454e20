package models

import (
	"encoding/json"

	"github.com/shenikar/danger_prediction_engine/internal/geo"
)

// Известные значения освещённости
const (
	LightingDark    = "dark"
	LightingDim     = "dim"
	LightingNormal  = "normal"
	LightingBright  = "bright"
	LightingUnknown = "unknown"
)

// Известные значения плотности людей вокруг
const (
	CrowdEmpty   = "empty"
	CrowdSparse  = "sparse"
	CrowdNormal  = "normal"
	CrowdCrowded = "crowded"
	CrowdUnknown = "unknown"
)

// MotionSignal - данные акселерометра и скорости устройства
type MotionSignal struct {
	Fall     Flag          `json:"fall"`
	Shake    Flag          `json:"shake"`
	SpeedKmh OptionalFloat `json:"speed_kmh"`
}

// UnmarshalJSON игнорирует значение, если это не объект
func (m *MotionSignal) UnmarshalJSON(data []byte) error {
	type plain MotionSignal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*m = MotionSignal{}
		return nil
	}
	*m = MotionSignal(p)
	return nil
}

// ContextSignal - окружение: освещённость и людность
type ContextSignal struct {
	Lighting OptionalString `json:"lighting"`
	Crowd    OptionalString `json:"crowd"`
}

// UnmarshalJSON игнорирует значение, если это не объект
func (c *ContextSignal) UnmarshalJSON(data []byte) error {
	type plain ContextSignal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*c = ContextSignal{}
		return nil
	}
	*c = ContextSignal(p)
	return nil
}

// SignalBundle - полный набор необязательных сигналов, передаваемых в оценку риска за один вызов
type SignalBundle struct {
	Lat        OptionalFloat  `json:"lat"`
	Lon        OptionalFloat  `json:"lon"`
	Timestamp  OptionalString `json:"timestamp"`
	HeartRate  OptionalFloat  `json:"heart_rate"`
	RestingBPM OptionalFloat  `json:"resting_bpm"`
	Motion     MotionSignal   `json:"motion"`
	Context    ContextSignal  `json:"context"`
	UserText   OptionalString `json:"user_text"`
}

// Point возвращает координату, если заданы и широта, и долгота
func (s SignalBundle) Point() (geo.Point, bool) {
	if !s.Lat.Valid || !s.Lon.Valid {
		return geo.Point{}, false
	}
	return geo.Point{Lat: s.Lat.Value, Lon: s.Lon.Value}, true
}
