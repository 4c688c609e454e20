// Package safezone хранит неизменяемый каталог безопасных мест и поиск по радиусу от точки.
package safezone

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/shenikar/danger_prediction_engine/internal/geo"
	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// ErrInvalidCatalog возвращается, если каталог пуст или содержит некорректную запись
var ErrInvalidCatalog = errors.New("invalid safe zone catalog")

// Directory - каталог безопасных мест. После создания не изменяется,
// поэтому Query можно вызывать из любого числа горутин без синхронизации.
type Directory struct {
	zones []models.SafeZone
}

// NewDirectory создает каталог из переданных зон, сохраняя их порядок
func NewDirectory(zones []models.SafeZone) (*Directory, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: no zones", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(zones))
	owned := make([]models.SafeZone, len(zones))
	for i, z := range zones {
		if z.ID == "" || z.Name == "" {
			return nil, fmt.Errorf("%w: zone #%d has no id or name", ErrInvalidCatalog, i)
		}
		if _, dup := seen[z.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate zone id %q", ErrInvalidCatalog, z.ID)
		}
		seen[z.ID] = struct{}{}

		z.Tags = slices.Clone(z.Tags)
		owned[i] = z
	}

	return &Directory{zones: owned}, nil
}

// Len возвращает количество зон в каталоге
func (d *Directory) Len() int {
	return len(d.zones)
}

// Query возвращает зоны в радиусе radiusKm от point.
// Если point == nil, возвращается весь каталог в исходном порядке и без distance_km.
// Иначе - зоны с расстоянием <= radiusKm, расстояние округлено до сотых,
// сортировка по возрастанию расстояния, при равенстве сохраняется порядок каталога.
func (d *Directory) Query(point *geo.Point, radiusKm float64) []models.NearbySafeZone {
	if point == nil {
		out := make([]models.NearbySafeZone, 0, len(d.zones))
		for _, z := range d.zones {
			out = append(out, models.NearbySafeZone{SafeZone: copyZone(z)})
		}
		return out
	}

	out := make([]models.NearbySafeZone, 0)
	for _, z := range d.zones {
		dist := geo.Distance(*point, z.Point())
		// NaN-расстояние (координата NaN) не проходит сравнение и отбрасывается
		if !(dist <= radiusKm) {
			continue
		}
		rounded := roundTo(dist, 2)
		out = append(out, models.NearbySafeZone{
			SafeZone:   copyZone(z),
			DistanceKm: &rounded,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out
}

func copyZone(z models.SafeZone) models.SafeZone {
	z.Tags = slices.Clone(z.Tags)
	return z
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
