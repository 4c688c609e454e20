package models

import "github.com/shenikar/danger_prediction_engine/internal/geo"

// SafeZone - проверенное место, где можно укрыться (полиция, аптека, больница и т.п.)
type SafeZone struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Lat      float64  `json:"lat" yaml:"lat"`
	Lon      float64  `json:"lon" yaml:"lon"`
	Tags     []string `json:"tags" yaml:"tags"`
	Verified bool     `json:"verified" yaml:"verified"`
	Open24x7 bool     `json:"open_24x7" yaml:"open_24x7"`
}

// Point возвращает координату зоны
func (z SafeZone) Point() geo.Point {
	return geo.Point{Lat: z.Lat, Lon: z.Lon}
}

// NearbySafeZone - элемент результата поиска. DistanceKm заполняется только при поиске от точки.
type NearbySafeZone struct {
	SafeZone
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
