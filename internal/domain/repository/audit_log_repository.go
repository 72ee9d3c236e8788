package repository

import (
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error)
	FindByUser(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
