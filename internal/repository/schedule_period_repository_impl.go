package repository

import (
	"errors"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type schedulePeriodRepository struct{}

func NewSchedulePeriodRepository() domainRepo.SchedulePeriodRepository {
	return &schedulePeriodRepository{}
}

func (r *schedulePeriodRepository) Create(db *gorm.DB, period *entity.SchedulePeriod) error {
	return db.Create(period).Error
}

func (r *schedulePeriodRepository) FindByID(db *gorm.DB, id int) (*entity.SchedulePeriod, error) {
	var period entity.SchedulePeriod
	err := db.Where("id = ?", id).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *schedulePeriodRepository) FindByIDWithAssignments(db *gorm.DB, id int) (*entity.SchedulePeriod, error) {
	var period entity.SchedulePeriod
	err := db.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, shift_id ASC, id ASC") }).
		Preload("Assignments.Shift").
		Preload("Assignments.Shift.Department").
		Preload("Assignments.Resident").
		Where("id = ?", id).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *schedulePeriodRepository) FindAll(db *gorm.DB) ([]entity.SchedulePeriod, error) {
	var periods []entity.SchedulePeriod
	err := db.Order("start_date DESC").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *schedulePeriodRepository) Update(db *gorm.DB, period *entity.SchedulePeriod) error {
	return db.Omit("Assignments").Save(period).Error
}
