package repository

import (
	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("resident_id = ?", residentID).Order("start_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int, residentID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND resident_id = ?", id, residentID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
