package alert

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/danger_prediction_engine/internal/models"
)

// DefaultQueueKey - ключ списка Redis с алертами по умолчанию
const DefaultQueueKey = "sos_alerts"

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher - интерфейс для постановки алертов в очередь доставки
type Publisher interface {
	Publish(ctx context.Context, alert models.Alert) error
}

// RedisPublisher - реализация Publisher поверх списка Redis
type RedisPublisher struct {
	redisClient *redis.Client
	queueKey    string
	sealer      Sealer
}

// NewRedisPublisher создает новый RedisPublisher. sealer может быть nil - тогда алерты не шифруются.
func NewRedisPublisher(client *redis.Client, queueKey string, sealer Sealer) *RedisPublisher {
	if queueKey == "" {
		queueKey = DefaultQueueKey
	}
	return &RedisPublisher{
		redisClient: client,
		queueKey:    queueKey,
		sealer:      sealer,
	}
}

// Publish добавляет алерт в левую часть списка (очереди)
func (p *RedisPublisher) Publish(ctx context.Context, alert models.Alert) error {
	msg, err := encode(alert, p.sealer)
	if err != nil {
		return err
	}

	if err := p.redisClient.LPush(ctx, p.queueKey, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish alert to Redis: %w", err)
	}
	return nil
}
