package repository

import (
	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

// ReplaceForResident swaps the resident's availability windows inside
// one transaction so readers never observe a half-replaced set.
func (r *availabilityRepository) ReplaceForResident(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resident_id = ?", residentID).Delete(&entity.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		for i := range windows {
			windows[i].ID = 0
			windows[i].ResidentID = residentID
		}
		return tx.Create(&windows).Error
	})
}

func (r *availabilityRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("resident_id = ?", residentID).Order("day_of_week ASC").Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}
