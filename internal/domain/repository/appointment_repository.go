package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.Appointment, error)
	// Delete removes the appointment only when it belongs to the given
	// resident. Returns affected rows: 1 = deleted, 0 = no such row.
	Delete(db *gorm.DB, id int, residentID uuid.UUID) (int64, error)
}
