package usecase

import (
	"context"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultAuditLogLimit caps unbounded listing queries.
const defaultAuditLogLimit = 100

type AuditLogUsecase interface {
	// GetRecentAuditLogs returns the newest entries, optionally scoped
	// to one acting user. A non-positive limit falls back to the default.
	GetRecentAuditLogs(ctx context.Context, limit int, userID *uuid.UUID) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int, userID *uuid.UUID) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}

	var err error
	var logs []entity.AuditLog
	if userID != nil {
		logs, err = u.auditLogRepo.FindByUser(u.db.WithContext(ctx), *userID, limit)
	} else {
		logs, err = u.auditLogRepo.FindRecent(u.db.WithContext(ctx), limit)
	}
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
