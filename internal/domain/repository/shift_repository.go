package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

// ShiftRepository is read-only: the shift catalog is managed through
// seed fixtures.
type ShiftRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Shift, error)
	// FindActiveWithRoles loads every active shift with its department
	// and its roles in declared order, with role qualifications.
	FindActiveWithRoles(db *gorm.DB) ([]entity.Shift, error)
}
