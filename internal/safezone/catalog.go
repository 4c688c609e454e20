package safezone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// DefaultZones - встроенный демонстрационный каталог (Колката)
func DefaultZones() []models.SafeZone {
	return []models.SafeZone{
		{
			ID:       "kol-police-helpdesk",
			Name:     "Kolkata Police Helpdesk",
			Lat:      22.5729,
			Lon:      88.3639,
			Tags:     []string{"Official", "24/7"},
			Verified: true,
			Open24x7: true,
		},
		{
			ID:       "kol-pharmacy-247",
			Name:     "24/7 Pharmacy",
			Lat:      22.5698,
			Lon:      88.3692,
			Tags:     []string{"Open 24/7", "Verified"},
			Verified: true,
			Open24x7: true,
		},
		{
			ID:       "kol-well-lit-cafe",
			Name:     "Well-lit Cafe",
			Lat:      22.5755,
			Lon:      88.3605,
			Tags:     []string{"Crowded", "Charging"},
			Verified: true,
		},
		{
			ID:       "kol-metro-gate",
			Name:     "Metro Station Gate",
			Lat:      22.5737,
			Lon:      88.3620,
			Tags:     []string{"CCTV", "Transit"},
			Verified: true,
		},
		{
			ID:       "kol-hospital-opd",
			Name:     "Hospital OPD",
			Lat:      22.5762,
			Lon:      88.3667,
			Tags:     []string{"Medical", "Security"},
			Verified: true,
			Open24x7: true,
		},
	}
}

type catalogFile struct {
	Zones []models.SafeZone `yaml:"zones"`
}

// LoadCatalog читает каталог зон из YAML-файла вида:
//
//	zones:
//	  - id: police-1
//	    name: Police Station
//	    lat: 22.57
//	    lon: 88.36
//	    tags: [Official]
//	    verified: true
//	    open_24x7: true
func LoadCatalog(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("safezone: failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog разбирает YAML-каталог и создает Directory
func ParseCatalog(data []byte) (*Directory, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewDirectory(file.Zones)
}

// NewDefaultDirectory создает каталог из встроенного набора зон
func NewDefaultDirectory() *Directory {
	d, err := NewDirectory(DefaultZones())
	if err != nil {
		panic(fmt.Sprintf("safezone: default catalog is invalid: %v", err))
	}
	return d
}
