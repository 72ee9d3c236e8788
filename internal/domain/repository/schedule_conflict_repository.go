package repository

import (
	"time"

	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleConflictRepository interface {
	BulkCreate(db *gorm.DB, conflicts []entity.ScheduleConflict) error
	DeleteInRange(db *gorm.DB, from, to time.Time) (int64, error)
	FindInRange(db *gorm.DB, from, to time.Time) ([]entity.ScheduleConflict, error)
}
