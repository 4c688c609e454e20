package models

// RiskLevel - уровень риска, однозначно определяемый баллом
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskElevated RiskLevel = "elevated"
	RiskCritical RiskLevel = "critical"
)

// RiskAssessment - результат оценки набора сигналов
type RiskAssessment struct {
	Score              float64          `json:"score"`
	Level              RiskLevel        `json:"level"`
	Reasons            []string         `json:"reasons"`
	RecommendedActions []string         `json:"recommended_actions"`
	NearbySafeZones    []NearbySafeZone `json:"nearby_safe_zones"`
}
