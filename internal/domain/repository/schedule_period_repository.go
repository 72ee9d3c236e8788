package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type SchedulePeriodRepository interface {
	Create(db *gorm.DB, period *entity.SchedulePeriod) error
	FindByID(db *gorm.DB, id int) (*entity.SchedulePeriod, error)
	// FindByIDWithAssignments loads the period with its assignments,
	// each carrying its shift and resident, ordered by date.
	FindByIDWithAssignments(db *gorm.DB, id int) (*entity.SchedulePeriod, error)
	FindAll(db *gorm.DB) ([]entity.SchedulePeriod, error)
	Update(db *gorm.DB, period *entity.SchedulePeriod) error
}
