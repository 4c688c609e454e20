package alert

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// Sealer шифрует сообщения очереди
type Sealer interface {
	Seal(plaintext []byte) (string, error)
	Open(encoded string) ([]byte, error)
}

// encode сериализует алерт для очереди; при наличии sealer сообщение шифруется
func encode(alert models.Alert, sealer Sealer) (string, error) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return "", fmt.Errorf("failed to marshal alert: %w", err)
	}
	if sealer == nil {
		return string(payload), nil
	}
	sealed, err := sealer.Seal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to seal alert: %w", err)
	}
	return sealed, nil
}

// decode возвращает алерт и его JSON-представление для отправки
func decode(raw string, sealer Sealer) (models.Alert, []byte, error) {
	payload := []byte(raw)
	if sealer != nil {
		opened, err := sealer.Open(raw)
		if err != nil {
			return models.Alert{}, nil, fmt.Errorf("failed to open sealed alert: %w", err)
		}
		payload = opened
	}

	var alert models.Alert
	if err := json.Unmarshal(payload, &alert); err != nil {
		return models.Alert{}, nil, fmt.Errorf("failed to unmarshal alert: %w", err)
	}
	return alert, payload, nil
}
