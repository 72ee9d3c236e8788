package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidentRepository interface {
	Create(db *gorm.DB, resident *entity.Resident) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Resident, error)
	FindAll(db *gorm.DB) ([]entity.Resident, error)
	// FindActiveForScheduling loads every active resident with active
	// qualification grants, availability windows and appointments, in
	// stable admission order.
	FindActiveForScheduling(db *gorm.DB) ([]entity.Resident, error)
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
