package repository

import (
	"errors"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type shiftRepository struct{}

func NewShiftRepository() domainRepo.ShiftRepository {
	return &shiftRepository{}
}

func (r *shiftRepository) FindByID(db *gorm.DB, id int) (*entity.Shift, error) {
	var shift entity.Shift
	err := db.
		Preload("Department").
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Preload("Roles.Qualification").
		Where("id = ?", id).
		First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

// FindActiveWithRoles loads the shift catalog exactly the way the
// generation engine walks it: active shifts in stable order, roles in
// declared position order with their qualifications.
func (r *shiftRepository) FindActiveWithRoles(db *gorm.DB) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := db.
		Preload("Department").
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Preload("Roles.Qualification").
		Where("is_active = ?", true).
		Order("department_id ASC, start_time ASC, id ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}
