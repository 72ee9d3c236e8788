package repository

import (
	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type shiftAssignmentRepository struct{}

func NewShiftAssignmentRepository() domainRepo.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{}
}

func (r *shiftAssignmentRepository) Create(db *gorm.DB, assignment *entity.ShiftAssignment) error {
	return db.Create(assignment).Error
}

func (r *shiftAssignmentRepository) BulkCreate(db *gorm.DB, assignments []entity.ShiftAssignment) error {
	return db.CreateInBatches(assignments, 100).Error
}

func (r *shiftAssignmentRepository) DeleteByPeriod(db *gorm.DB, periodID int) (int64, error) {
	result := db.Where("period_id = ?", periodID).Delete(&entity.ShiftAssignment{})
	return result.RowsAffected, result.Error
}

func (r *shiftAssignmentRepository) FindByFilter(db *gorm.DB, filter *entity.AssignmentFilter) ([]entity.ShiftAssignment, error) {
	var assignments []entity.ShiftAssignment
	query := db.Model(&entity.ShiftAssignment{})

	if filter != nil {
		if filter.PeriodID != 0 {
			query = query.Where("shift_assignments.period_id = ?", filter.PeriodID)
		}
		if filter.ResidentID != "" {
			query = query.Where("shift_assignments.resident_id = ?", filter.ResidentID)
		}
		if filter.DepartmentID != 0 {
			query = query.
				Joins("JOIN shifts ON shifts.id = shift_assignments.shift_id").
				Where("shifts.department_id = ?", filter.DepartmentID)
		}
		if filter.StartDate != "" {
			query = query.Where("shift_assignments.date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("shift_assignments.date <= ?", filter.EndDate)
		}
	}

	err := query.
		Preload("Shift").
		Preload("Shift.Department").
		Preload("Resident").
		Order("date ASC, shift_id ASC, id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
