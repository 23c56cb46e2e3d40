// Package config предоставляет структуры и функции для загрузки конфигурации
// трекера упражнений из YAML-файла и переменных окружения.
package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Поддерживаемые драйверы хранилища.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env             string          `yaml:"env" env:"ENV" env-default:"local"`
	Storage         Storage         `yaml:"storage"`
	RedisConnection RedisConnection `yaml:"redis_connection"`
	RabbitMQ        RabbitMQ        `yaml:"rabbitmq"`
	HTTPServer      HTTPServer      `yaml:"http_server"`
	RateLimit       RateLimit       `yaml:"rate_limit"`
	CacheTTL        time.Duration   `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"5m"`
}

// Storage описывает подключение к хранилищу пользователей.
type Storage struct {
	Driver         string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	PostgresDSN    string `yaml:"postgres_dsn" env:"DATABASE_URL"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	MongoURI       string `yaml:"mongo_uri" env:"MONGO_URI"`
	MongoDatabase  string `yaml:"mongo_database" env:"MONGO_DATABASE" env-default:"tracker"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой Addr отключает кеширование.
type RedisConnection struct {
	Addr        string        `yaml:"address" env:"REDIS_ADDR"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

// RabbitMQ настройки публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"tracker.events"`
	Retries    int           `yaml:"retries" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Host        string        `yaml:"host" env:"HOST"`
	Port        string        `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Address возвращает адрес для net/http.Server.
func (s HTTPServer) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// RateLimit параметры общего ограничителя запросов к API.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"20"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"40"`
}

// Load читает конфиг из файла CONFIG_PATH, если он задан, иначе только из окружения.
func Load() (*Config, error) {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
		return &cfg, cfg.validate()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, cfg.validate()
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required for driver %q", DriverPostgres)
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" {
			return fmt.Errorf("storage.mongo_uri is required for driver %q", DriverMongo)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  MongoDatabase: %s\n"+
			"  MigrationsPath: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"CacheTTL: %s\n",
		c.Env,
		c.Storage.Driver,
		c.Storage.MongoDatabase,
		c.Storage.MigrationsPath,
		c.RedisConnection.Addr,
		c.RedisConnection.DB,
		c.RabbitMQ.Exchange,
		c.HTTPServer.Address(),
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.CacheTTL,
	)
}
