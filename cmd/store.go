package cmd

import (
	"github.com/rs/zerolog"

	config "task-manager.com/task-manager/internal/configs"
	"task-manager.com/task-manager/internal/store"
)

func newStore(cfg config.Config, logger zerolog.Logger) (store.Store, error) {
	if cfg.StorageDriver == config.DriverSQLite {
		db := config.NewDatabaseClient(cfg.DatabaseDSN)
		return store.NewGormStore(db, cfg.DatabaseDSN, logger)
	}
	return store.NewFileStore(cfg.DataFile, logger)
}
