package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert - SOS-сигнал пользователя, передаваемый во внешний сервис оповещений
type Alert struct {
	ID        uuid.UUID      `json:"id"`
	Reason    string         `json:"reason"`
	Message   string         `json:"message,omitempty"`
	Latitude  *float64       `json:"lat,omitempty"`
	Longitude *float64       `json:"lon,omitempty"`
	When      string         `json:"when,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	QueuedAt  time.Time      `json:"queued_at"`
}
