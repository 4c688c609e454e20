package v1

import "github.com/shenikar/danger_prediction_engine/internal/models"

// ModelToSafeZoneResponse преобразует зону в DTO
func ModelToSafeZoneResponse(zone models.NearbySafeZone) *SafeZoneResponse {
	tags := zone.Tags
	if tags == nil {
		tags = []string{}
	}
	return &SafeZoneResponse{
		ID:         zone.ID,
		Name:       zone.Name,
		Title:      zone.Name,
		Latitude:   zone.Lat,
		Longitude:  zone.Lon,
		Tags:       tags,
		Verified:   zone.Verified,
		Open24x7:   zone.Open24x7,
		DistanceKm: zone.DistanceKm,
	}
}

// ModelsToSafeZoneResponses преобразует слайс зон в слайс DTO
func ModelsToSafeZoneResponses(zones []models.NearbySafeZone) []*SafeZoneResponse {
	responses := make([]*SafeZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToSafeZoneResponse(zone)
	}
	return responses
}

// ModelToPredictionResponse преобразует оценку риска в DTO
func ModelToPredictionResponse(a models.RiskAssessment) *PredictionResponse {
	reasons := a.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	actions := a.RecommendedActions
	if actions == nil {
		actions = []string{}
	}
	return &PredictionResponse{
		Score:              a.Score,
		Level:              string(a.Level),
		Reasons:            reasons,
		RecommendedActions: actions,
		NearbySafeZones:    ModelsToSafeZoneResponses(a.NearbySafeZones),
	}
}

// DTOToAlertModel преобразует запрос алерта в доменную модель
func DTOToAlertModel(dto AlertRequest) *models.Alert {
	return &models.Alert{
		Reason:    dto.Reason,
		Message:   dto.Message,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		When:      dto.When,
		Details:   dto.Details,
	}
}
