package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Berlin"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Postgres struct {
		Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
		User     string `env:"POSTGRES_USER" envDefault:"portal"`
		Password string `env:"POSTGRES_PASSWORD"`
		Database string `env:"POSTGRES_DATABASE" envDefault:"portal"`
		SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"availability_generator:availability_generator"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled     bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri     string `env:"RABBITMQ_URL"`
		QueueConfig struct {
			AppointmentQueueName      string `env:"RABBITMQ_APPOINTMENT_QUEUE" envDefault:"availability-generator.appointment"`
			AppointmentQueueBind      string `env:"RABBITMQ_APPOINTMENT_QUEUE_BIND" envDefault:"portal.availability-generator-svc.appointment.#"`
			AppointmentQueueExchange  string `env:"RABBITMQ_APPOINTMENT_QUEUE_EXCHANGE" envDefault:"portal"`
			AvailabilityQueueName     string `env:"RABBITMQ_AVAILABILITY_QUEUE" envDefault:"availability-generator.availability"`
			AvailabilityQueueBind     string `env:"RABBITMQ_AVAILABILITY_QUEUE_BIND" envDefault:"portal.availability-generator-svc.availability.#"`
			AvailabilityQueueExchange string `env:"RABBITMQ_AVAILABILITY_QUEUE_EXCHANGE" envDefault:"portal"`
			AllQueueName              string `env:"RABBITMQ_ALL_QUEUE" envDefault:"availability-generator._all_"`
			AllQueueBind              string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"portal.availability-generator-svc._all_.#"`
			AllQueueExchange          string `env:"RABBITMQ_ALL_QUEUE_EXCHANGE" envDefault:"portal"`
		}
	}

	Cache struct {
		Enabled       bool          `env:"CACHE_ENABLED"`
		LocationsSize int           `env:"CACHE_LOCATIONS_SIZE" envDefault:"1000"`
		WeeksTTL      time.Duration `env:"CACHE_WEEKS_TTL" envDefault:"30m"`
	}

	Generator struct {
		// Сопоставление записи со слотом по часовому интервалу вместо
		// точного совпадения минут (исторически портал сверяет минуты)
		HourBucketMatching bool `env:"GENERATOR_HOUR_BUCKET_MATCHING"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разделение basic-клиентов
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Если RabbitMQ не включен, то кэш тоже не включаем:
	// без событий инвалидации кэш отдавал бы устаревшие недели
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host, c.Postgres.Port, c.Postgres.User, c.Postgres.Password,
		c.Postgres.Database, c.Postgres.SSLMode)
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
