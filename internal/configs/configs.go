package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	Env                    string `env:"APP_ENV" env-default:"local"`
	AppHost                string `env:"APP_HOST" env-default:"127.0.0.1"`
	AppPort                string `env:"APP_PORT" env-default:"8080"`
	StorageDriver          string `env:"STORAGE_DRIVER" env-default:"file"`
	DataFile               string `env:"DATA_FILE" env-default:"data/tasks.json"`
	DatabaseDSN            string `env:"DATABASE_DSN" env-default:"data/tasks.db"`
	ExportWorkers          int    `env:"EXPORT_WORKERS" env-default:"2"`
	ExportQueueSize        int    `env:"EXPORT_QUEUE_SIZE" env-default:"16"`
	RateLimit              int    `env:"RATE_LIMIT_PER_MINUTE" env-default:"120"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" env-default:"20"`
}

func (c Config) AppURL() string {
	return c.AppHost + ":" + c.AppPort
}

func Load() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read environment: %v", err)
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.StorageDriver != DriverFile && cfg.StorageDriver != DriverSQLite {
		log.Fatalf("STORAGE_DRIVER must be %q or %q", DriverFile, DriverSQLite)
	}
	if cfg.StorageDriver == DriverFile && cfg.DataFile == "" {
		log.Fatal("DATA_FILE must not be empty")
	}
	if cfg.StorageDriver == DriverSQLite && cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.ExportWorkers <= 0 {
		log.Fatal("EXPORT_WORKERS must be greater than 0")
	}
	if cfg.ExportQueueSize <= 0 {
		log.Fatal("EXPORT_QUEUE_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}
