package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkLimitRepository interface {
	Create(db *gorm.DB, limit *entity.WorkLimit) error
	FindAll(db *gorm.DB) ([]entity.WorkLimit, error)
	// FindActive loads every active limit row, individual and global.
	FindActive(db *gorm.DB) ([]entity.WorkLimit, error)
	// FindActiveForResident loads the active rows relevant to one
	// resident: their individual rows plus the global rows.
	FindActiveForResident(db *gorm.DB, residentID uuid.UUID) ([]entity.WorkLimit, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
