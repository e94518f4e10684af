package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

// counters holds the id counters as a single-row table.
type counters struct {
	ID             int `gorm:"primaryKey"`
	NextTaskID     int
	NextEmployeeID int
}

func (counters) TableName() string { return "counters" }

// GormStore persists the snapshot to an embedded database. It implements
// the same whole-snapshot contract as FileStore: Save replaces everything
// in one transaction.
type GormStore struct {
	db     *gorm.DB
	dsn    string
	logger zerolog.Logger
}

func NewGormStore(db *gorm.DB, dsn string, logger zerolog.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&model.Task{}, &model.Employee{}, &counters{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, dsn: dsn, logger: logger}, nil
}

func (s *GormStore) Path() string {
	return s.dsn
}

func (s *GormStore) Load(ctx context.Context) (*model.AppData, error) {
	var c counters
	err := s.db.WithContext(ctx).First(&c, "id = ?", 1).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().
				Err(err).
				Msg("failed to read counters, using defaults")
		}
		return DefaultData(time.Now()), nil
	}

	data := &model.AppData{
		NextTaskID:     c.NextTaskID,
		NextEmployeeID: c.NextEmployeeID,
		Tasks:          []*model.Task{},
		Employees:      []*model.Employee{},
	}

	if err := s.db.WithContext(ctx).Order("id asc").Find(&data.Tasks).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&data.Employees).Error; err != nil {
		return nil, err
	}

	return data, nil
}

func (s *GormStore) Save(ctx context.Context, data *model.AppData) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Employee{}).Error; err != nil {
			return err
		}

		if len(data.Tasks) > 0 {
			if err := tx.Create(data.Tasks).Error; err != nil {
				return err
			}
		}
		if len(data.Employees) > 0 {
			if err := tx.Create(data.Employees).Error; err != nil {
				return err
			}
		}

		c := counters{
			ID:             1,
			NextTaskID:     data.NextTaskID,
			NextEmployeeID: data.NextEmployeeID,
		}
		return tx.Save(&c).Error
	})
}
