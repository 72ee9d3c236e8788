package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

// DepartmentRepository is read-only: the department catalog is managed
// through seed fixtures.
type DepartmentRepository interface {
	FindAll(db *gorm.DB) ([]entity.Department, error)
}
