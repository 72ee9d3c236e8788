package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	// ReplaceForResident swaps the resident's full set of availability
	// windows in one transaction.
	ReplaceForResident(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error
	FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.AvailabilityWindow, error)
}
