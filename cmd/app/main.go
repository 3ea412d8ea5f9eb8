package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lernhub/location-availability-generator/internal/adapters/in/http"
	"github.com/lernhub/location-availability-generator/internal/adapters/in/rabbitmq"
	"github.com/lernhub/location-availability-generator/internal/adapters/out/cache"
	"github.com/lernhub/location-availability-generator/internal/adapters/out/logger"
	"github.com/lernhub/location-availability-generator/internal/adapters/out/postgres"
	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
	"github.com/lernhub/location-availability-generator/internal/core/services/availability_service"
)

func main() {
	// .env подхватывается только если он есть, в контейнерах переменные уже заданы
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	postgresAdapter, err := postgres.NewPostgresAdapter(cfg, mainLogger.WithModule("PostgresAdapter"))
	if err != nil {
		logger.Error("app.postgres.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			logger.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	// Инициализация сервиса
	availabilityService := availability_service.NewAvailabilityService(
		postgresAdapter,
		postgresAdapter,
		cacheAdapter,
		cfg,
		mainLogger.WithModule("AvailabilityService"),
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := http.NewAvailabilityController(
		availabilityService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewCacheHitListener(
			availabilityService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		// Добавляем остановку RabbitMQ в defer
		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"postgres": map[string]string{
					"host":     cfg.Postgres.Host,
					"database": cfg.Postgres.Database,
				},
				"rabbitmq": map[string]interface{}{
					"enabled": cfg.RabbitMq.Enabled,
					"url":     cfg.RabbitMq.AmqpUri,
				},
				"cache": map[string]interface{}{
					"enabled":        cfg.Cache.Enabled,
					"locations_size": cfg.Cache.LocationsSize,
				},
			},
		})
	}
}
