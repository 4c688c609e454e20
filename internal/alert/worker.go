package alert

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Signature"

// WorkerConfig - параметры доставки алертов во внешний сервис оповещений
type WorkerConfig struct {
	QueueKey    string
	NotifierURL string
	Secret      string
	Timeout     time.Duration
	MaxRetries  int
	BaseDelay   time.Duration
}

// Worker забирает алерты из очереди Redis и отправляет их на NotifierURL
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         WorkerConfig
	sealer      Sealer
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg WorkerConfig, sealer Sealer) *Worker {
	if cfg.QueueKey == "" {
		cfg.QueueKey = DefaultQueueKey
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		sealer:      sealer,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		sleep: sleepContext,
	}
}

// Start запускает горутину для обработки очереди алертов. Горутина завершается при отмене ctx,
// после чего закрывается возвращаемый канал.
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	w.logger.Info("Starting alert worker...")
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping alert worker.")
				return
			}

			// BRPOP - блокирующее извлечение из правой части списка, 0 - бесконечное ожидание
			result, err := w.redisClient.BRPop(ctx, 0, w.cfg.QueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop alert from Redis")
				_ = w.sleep(ctx, w.cfg.BaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			if err := w.Process(ctx, result[1]); err != nil {
				w.logger.WithError(err).Error("Failed to process alert")
			}
		}
	}()
	return done
}

// Process расшифровывает сообщение очереди и доставляет его
func (w *Worker) Process(ctx context.Context, raw string) error {
	alert, payload, err := decode(raw, w.sealer)
	if err != nil {
		return err
	}

	log := w.logger.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"reason":   alert.Reason,
	})
	log.Debug("Processing alert...")

	if w.cfg.NotifierURL == "" {
		log.Warn("Notifier URL is not configured. Skipping alert delivery.")
		return nil
	}

	return w.deliver(ctx, log, payload)
}

func (w *Worker) deliver(ctx context.Context, log *logrus.Entry, payload []byte) error {
	delay := w.cfg.BaseDelay
	maxRetries := w.cfg.MaxRetries

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, payload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Alert delivered successfully.")
			return nil
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert. Retries left: %d", maxRetries-1-i)
		} else {
			log.Warnf("Alert delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
		}

		if i == maxRetries-1 {
			break
		}
		if err := w.sleep(ctx, delay); err != nil {
			return fmt.Errorf("alert delivery interrupted: %w", err)
		}
		delay *= 2 // Экспоненциальная задержка
	}

	return fmt.Errorf("failed to deliver alert after %d attempts", maxRetries)
}

func (w *Worker) send(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.NotifierURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create notifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если секрет задан
	if w.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// Sign возвращает HMAC-SHA256 подпись данных в hex
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
