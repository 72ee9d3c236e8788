package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidentQualificationRepository interface {
	Grant(db *gorm.DB, grant *entity.ResidentQualification) error
	// Revoke deactivates an active grant. Returns affected rows:
	// 1 = revoked, 0 = no active grant to revoke.
	Revoke(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error)
	FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.ResidentQualification, error)
	FindActiveGrant(db *gorm.DB, residentID uuid.UUID, qualificationID int) (*entity.ResidentQualification, error)
}
