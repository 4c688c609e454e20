package v1

import (
	"github.com/google/uuid"
)

// SafeZoneResponse DTO безопасной зоны
// @Description DTO безопасной зоны; distance_km присутствует только при поиске от точки
type SafeZoneResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Latitude   float64  `json:"lat"`
	Longitude  float64  `json:"lon"`
	Tags       []string `json:"tags"`
	Verified   bool     `json:"verified"`
	Open24x7   bool     `json:"open_24x7"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// SafeZonesResponse DTO для списка безопасных зон
// @Description DTO для списка безопасных зон
type SafeZonesResponse struct {
	Count int                 `json:"count"`
	Items []*SafeZoneResponse `json:"items"`
}

// PredictionResponse DTO для ответа с оценкой риска
// @Description DTO для ответа с оценкой риска
type PredictionResponse struct {
	Score              float64             `json:"score"`
	Level              string              `json:"level"`
	Reasons            []string            `json:"reasons"`
	RecommendedActions []string            `json:"recommended_actions"`
	NearbySafeZones    []*SafeZoneResponse `json:"nearby_safe_zones"`
}

// AlertRequest DTO для SOS-алерта
// @Description DTO для SOS-алерта
type AlertRequest struct {
	Reason    string         `json:"reason,omitempty" validate:"omitempty,max=64"`
	Message   string         `json:"message,omitempty" validate:"omitempty,max=1000"`
	Latitude  *float64       `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude *float64       `json:"lon,omitempty" validate:"omitempty,longitude"`
	When      string         `json:"when,omitempty" validate:"omitempty,max=64"`
	Details   map[string]any `json:"details,omitempty"`
}

// AlertResponse DTO для ответа на постановку алерта в очередь
// @Description DTO для ответа на постановку алерта в очередь
type AlertResponse struct {
	Status string         `json:"status"`
	ID     uuid.UUID      `json:"id"`
	Echo   map[string]any `json:"echo"`
}

// HealthResponse DTO для health-check
// @Description DTO для health-check
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	TimeUTC string `json:"time_utc"`
}
