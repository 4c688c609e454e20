// Package geo содержит расчёт расстояний между географическими точками.
package geo

import "math"

// EarthRadiusKm - радиус сферы, на которой считается расстояние
const EarthRadiusKm = 6371.0

// Point - точка в градусах широты и долготы.
// Диапазоны координат не проверяются: это ответственность вызывающего кода.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance возвращает расстояние по большому кругу между a и b в километрах (формула гаверсинусов).
// Если хотя бы одна координата NaN, результат тоже NaN.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h <= 0 {
		return 0
	}
	// для координат вне диапазона h может немного выйти за 1
	h = math.Min(h, 1)

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// WithinRadius сообщает, лежит ли b не дальше radiusKm от a (граница включается).
func WithinRadius(a, b Point, radiusKm float64) bool {
	return Distance(a, b) <= radiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
