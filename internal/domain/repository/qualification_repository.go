package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

// QualificationRepository is read-only: the qualification catalog is
// managed through seed fixtures.
type QualificationRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Qualification, error)
	FindAll(db *gorm.DB) ([]entity.Qualification, error)
}
