package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/danger_prediction_engine/docs"
	"github.com/shenikar/danger_prediction_engine/internal/alert"
	"github.com/shenikar/danger_prediction_engine/internal/config"
	"github.com/shenikar/danger_prediction_engine/internal/danger"
	v1 "github.com/shenikar/danger_prediction_engine/internal/handler/http/v1"
	"github.com/shenikar/danger_prediction_engine/internal/metrics"
	"github.com/shenikar/danger_prediction_engine/internal/safezone"
	"github.com/shenikar/danger_prediction_engine/internal/service"
	"github.com/shenikar/danger_prediction_engine/pkg/logger"
	redisclient "github.com/shenikar/danger_prediction_engine/pkg/redis"
	"github.com/shenikar/danger_prediction_engine/pkg/secretbox"
)

// @title Danger Prediction Engine API
// @version 1.0
// @description Risk scoring of personal-safety signals and nearby safe zones.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// loadSafeZones загружает каталог из файла или использует встроенный
func loadSafeZones(cfg *config.Config, log *logrus.Logger) (*safezone.Directory, error) {
	if cfg.SafeZonesFile == "" {
		log.Info("SAFE_ZONES_FILE not set, using built-in safe zone catalog")
		return safezone.NewDefaultDirectory(), nil
	}

	directory, err := safezone.LoadCatalog(cfg.SafeZonesFile)
	if err != nil {
		return nil, fmt.Errorf("could not load safe zones from %s: %w", cfg.SafeZonesFile, err)
	}
	log.WithField("file", cfg.SafeZonesFile).Info("Safe zone catalog loaded")
	return directory, nil
}

// newSealer возвращает nil, если ключ шифрования не задан
func newSealer(cfg *config.Config) (alert.Sealer, error) {
	if len(cfg.AlertEncryptionKey) == 0 {
		return nil, nil
	}
	sealer, err := secretbox.NewSealer(cfg.AlertEncryptionKey)
	if err != nil {
		return nil, err
	}
	return sealer, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	directory, err := loadSafeZones(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize safe zones: %v", err)
	}
	log.WithField("zones", directory.Len()).Info("Safe zone directory ready")

	engine := danger.NewEngine(directory)

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	sealer, err := newSealer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize alert encryption: %v", err)
	}
	if sealer == nil {
		log.Warn("ALERT_ENCRYPTION_KEY not set, alerts are queued unencrypted")
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Очередь алертов и воркер доставки
	publisher := alert.NewRedisPublisher(redisClient, cfg.AlertQueueKey, sealer)
	worker := alert.NewWorker(redisClient, log, alert.WorkerConfig{
		QueueKey:    cfg.AlertQueueKey,
		NotifierURL: cfg.NotifierURL,
		Secret:      cfg.NotifierSecret,
		Timeout:     cfg.NotifierTimeout,
		MaxRetries:  cfg.NotifierMaxRetries,
		BaseDelay:   cfg.NotifierBaseDelay,
	}, sealer)
	workerDone := worker.Start(ctx)

	// Инициализация сервисов
	dangerService := service.NewDangerService(engine, directory, publisher, collector, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dangerService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), collector.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Статический фронтенд, если задан
	if cfg.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
		log.WithField("dir", cfg.StaticDir).Info("Serving static files")
	}

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем завершения текущей доставки
	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Alert worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
