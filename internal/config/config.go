package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	StaticDir string `env:"STATIC_DIR"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Alert queue and notifier Config
	AlertQueueKey      string        `env:"ALERT_QUEUE_KEY" envDefault:"sos_alerts"`
	AlertEncryptionKey []byte        `env:"ALERT_ENCRYPTION_KEY"`
	NotifierURL        string        `env:"NOTIFIER_URL"`
	NotifierSecret     string        `env:"NOTIFIER_SECRET"`
	NotifierTimeout    time.Duration `env:"NOTIFIER_TIMEOUT" envDefault:"5s"`
	NotifierMaxRetries int           `env:"NOTIFIER_MAX_RETRIES" envDefault:"3"`
	NotifierBaseDelay  time.Duration `env:"NOTIFIER_BASE_DELAY" envDefault:"1s"`

	// Safe zones Config
	SafeZonesFile            string  `env:"SAFE_ZONES_FILE"`
	SafeZonesDefaultRadiusKm float64 `env:"SAFE_ZONES_DEFAULT_RADIUS_KM" envDefault:"5"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS" envDefault:"dev-key"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		StaticDir:                os.Getenv("STATIC_DIR"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		AlertQueueKey:            getEnv("ALERT_QUEUE_KEY", "sos_alerts"),
		NotifierURL:              os.Getenv("NOTIFIER_URL"),
		NotifierSecret:           os.Getenv("NOTIFIER_SECRET"),
		NotifierTimeout:          getEnvAsDuration("NOTIFIER_TIMEOUT", 5*time.Second),
		NotifierMaxRetries:       getEnvAsInt("NOTIFIER_MAX_RETRIES", 3),
		NotifierBaseDelay:        getEnvAsDuration("NOTIFIER_BASE_DELAY", time.Second),
		SafeZonesFile:            os.Getenv("SAFE_ZONES_FILE"),
		SafeZonesDefaultRadiusKm: getEnvAsFloat("SAFE_ZONES_DEFAULT_RADIUS_KM", 5),
		APIKeys:                  splitList(getEnv("API_KEYS", "dev-key")),
	}

	if cfg.SafeZonesDefaultRadiusKm <= 0 {
		return nil, fmt.Errorf("SAFE_ZONES_DEFAULT_RADIUS_KM must be positive, got %v", cfg.SafeZonesDefaultRadiusKm)
	}
	if cfg.NotifierMaxRetries < 1 {
		cfg.NotifierMaxRetries = 1
	}

	// Ключ шифрования алертов (base64, 32 байта)
	if raw := os.Getenv("ALERT_ENCRYPTION_KEY"); raw != "" {
		key, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("ALERT_ENCRYPTION_KEY is not valid base64: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("ALERT_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
		}
		cfg.AlertEncryptionKey = key
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// splitList разбивает список через запятую, отбрасывая пустые элементы
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
