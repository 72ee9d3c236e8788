package repository

import (
	"errors"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type residentRepository struct{}

func NewResidentRepository() domainRepo.ResidentRepository {
	return &residentRepository{}
}

func (r *residentRepository) Create(db *gorm.DB, resident *entity.Resident) error {
	return db.Create(resident).Error
}

func (r *residentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Resident, error) {
	var resident entity.Resident
	err := db.
		Preload("Qualifications").
		Preload("Qualifications.Qualification").
		Preload("Availability").
		Where("id = ?", id).
		First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resident, nil
}

func (r *residentRepository) FindAll(db *gorm.DB) ([]entity.Resident, error) {
	var residents []entity.Resident
	err := db.
		Preload("Qualifications", "is_active = ?", true).
		Preload("Qualifications.Qualification").
		Order("admission_date ASC, id ASC").
		Find(&residents).Error
	if err != nil {
		return nil, err
	}
	return residents, nil
}

// FindActiveForScheduling loads residents in the stable order the
// generation engine walks them: admission date, then ID.
func (r *residentRepository) FindActiveForScheduling(db *gorm.DB) ([]entity.Resident, error) {
	var residents []entity.Resident
	err := db.
		Preload("Qualifications", "is_active = ?", true).
		Preload("Qualifications.Qualification").
		Preload("Availability").
		Preload("Appointments").
		Where("is_active = ?", true).
		Order("admission_date ASC, id ASC").
		Find(&residents).Error
	if err != nil {
		return nil, err
	}
	return residents, nil
}

// Deactivate soft-deletes a resident ONLY if still active. Returns
// affected rows: 1 = success, 0 = already inactive.
func (r *residentRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Resident{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
