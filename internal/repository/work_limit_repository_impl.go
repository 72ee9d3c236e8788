package repository

import (
	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workLimitRepository struct{}

func NewWorkLimitRepository() domainRepo.WorkLimitRepository {
	return &workLimitRepository{}
}

func (r *workLimitRepository) Create(db *gorm.DB, limit *entity.WorkLimit) error {
	return db.Create(limit).Error
}

func (r *workLimitRepository) FindAll(db *gorm.DB) ([]entity.WorkLimit, error) {
	var limits []entity.WorkLimit
	err := db.Order("resident_id ASC NULLS FIRST, limit_type ASC, id ASC").Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

func (r *workLimitRepository) FindActive(db *gorm.DB) ([]entity.WorkLimit, error) {
	var limits []entity.WorkLimit
	err := db.Where("is_active = ?", true).Order("id ASC").Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

func (r *workLimitRepository) FindActiveForResident(db *gorm.DB, residentID uuid.UUID) ([]entity.WorkLimit, error) {
	var limits []entity.WorkLimit
	err := db.
		Where("is_active = ? AND (resident_id = ? OR resident_id IS NULL)", true, residentID).
		Order("id ASC").
		Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

func (r *workLimitRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.WorkLimit{})
	return result.RowsAffected, result.Error
}
