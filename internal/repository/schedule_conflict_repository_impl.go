package repository

import (
	"time"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleConflictRepository struct{}

func NewScheduleConflictRepository() domainRepo.ScheduleConflictRepository {
	return &scheduleConflictRepository{}
}

func (r *scheduleConflictRepository) BulkCreate(db *gorm.DB, conflicts []entity.ScheduleConflict) error {
	return db.CreateInBatches(conflicts, 100).Error
}

func (r *scheduleConflictRepository) DeleteInRange(db *gorm.DB, from, to time.Time) (int64, error) {
	result := db.Where("date >= ? AND date <= ?", from, to).Delete(&entity.ScheduleConflict{})
	return result.RowsAffected, result.Error
}

func (r *scheduleConflictRepository) FindInRange(db *gorm.DB, from, to time.Time) ([]entity.ScheduleConflict, error) {
	var conflicts []entity.ScheduleConflict
	err := db.
		Preload("Shift").
		Preload("Shift.Department").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, severity DESC, id ASC").
		Find(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}
