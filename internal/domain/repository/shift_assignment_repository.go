package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type ShiftAssignmentRepository interface {
	Create(db *gorm.DB, assignment *entity.ShiftAssignment) error
	BulkCreate(db *gorm.DB, assignments []entity.ShiftAssignment) error
	DeleteByPeriod(db *gorm.DB, periodID int) (int64, error)
	FindByFilter(db *gorm.DB, filter *entity.AssignmentFilter) ([]entity.ShiftAssignment, error)
}
