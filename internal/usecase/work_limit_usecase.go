package usecase

import (
	"context"
	"errors"
	"strconv"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/domain/repository"
	"work-program-scheduler/internal/scheduler"
	"work-program-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWorkLimitNotFound = errors.New("work limit not found")
	ErrInvalidLimitType  = errors.New("invalid limit type")
	ErrInvalidResidentID = errors.New("invalid resident id")
)

type WorkLimitUsecase interface {
	CreateWorkLimit(ctx context.Context, req *dto.CreateWorkLimitRequest) (*dto.WorkLimitResponse, error)
	GetAllWorkLimits(ctx context.Context) (*dto.WorkLimitListResponse, error)
	DeleteWorkLimit(ctx context.Context, id int) error
	// ValidateWorkLimit answers whether a resident may take on one more
	// unit of work under the limit type in question.
	ValidateWorkLimit(ctx context.Context, req *dto.ValidateWorkLimitRequest) (*dto.ValidateWorkLimitResponse, error)
}

type workLimitUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	workLimitRepo repository.WorkLimitRepository
	residentRepo  repository.ResidentRepository
	auditService  service.AuditService
}

func NewWorkLimitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workLimitRepo repository.WorkLimitRepository,
	residentRepo repository.ResidentRepository,
	auditService service.AuditService,
) WorkLimitUsecase {
	return &workLimitUsecase{
		db:            db,
		log:           log,
		workLimitRepo: workLimitRepo,
		residentRepo:  residentRepo,
		auditService:  auditService,
	}
}

func (u *workLimitUsecase) CreateWorkLimit(ctx context.Context, req *dto.CreateWorkLimitRequest) (*dto.WorkLimitResponse, error) {
	limitType := entity.LimitType(req.LimitType)
	if !limitType.IsValid() {
		return nil, ErrInvalidLimitType
	}

	limit := &entity.WorkLimit{
		LimitType: limitType,
		MaxValue:  req.MaxValue,
	}

	if req.ResidentID != "" {
		residentID, err := uuid.Parse(req.ResidentID)
		if err != nil {
			return nil, ErrInvalidResidentID
		}

		resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
		if err != nil {
			u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
			return nil, err
		}
		if resident == nil {
			return nil, ErrResidentNotFound
		}
		limit.ResidentID = &residentID
	}

	if err := u.workLimitRepo.Create(u.db.WithContext(ctx), limit); err != nil {
		u.log.Warnf("Failed to create work limit: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionWorkLimitCreate,
		"work_limit", strconv.Itoa(limit.ID), req); err != nil {
		u.log.Warnf("Failed to audit work limit create: %+v", err)
	}

	return converter.WorkLimitToResponse(limit), nil
}

func (u *workLimitUsecase) GetAllWorkLimits(ctx context.Context) (*dto.WorkLimitListResponse, error) {
	limits, err := u.workLimitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all work limits: %+v", err)
		return nil, err
	}

	return &dto.WorkLimitListResponse{
		Limits: converter.WorkLimitsToResponses(limits),
		Total:  len(limits),
	}, nil
}

func (u *workLimitUsecase) DeleteWorkLimit(ctx context.Context, id int) error {
	rows, err := u.workLimitRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete work limit %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrWorkLimitNotFound
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionWorkLimitDelete,
		"work_limit", strconv.Itoa(id), nil); err != nil {
		u.log.Warnf("Failed to audit work limit delete: %+v", err)
	}

	return nil
}

func (u *workLimitUsecase) ValidateWorkLimit(ctx context.Context, req *dto.ValidateWorkLimitRequest) (*dto.ValidateWorkLimitResponse, error) {
	limitType := entity.LimitType(req.LimitType)
	if !limitType.IsValid() {
		return nil, ErrInvalidLimitType
	}

	residentID, err := uuid.Parse(req.ResidentID)
	if err != nil {
		return nil, ErrInvalidResidentID
	}

	limits, err := u.workLimitRepo.FindActiveForResident(u.db.WithContext(ctx), residentID)
	if err != nil {
		// Answer conservatively rather than fail the caller: the
		// fallback ceiling keeps anyone from being overbooked while
		// storage is unhappy.
		u.log.Warnf("Failed to load limits for resident %s, using fallback: %+v", residentID, err)
		return &dto.ValidateWorkLimitResponse{
			Allowed:        req.CurrentValue < scheduler.FallbackLimit,
			EffectiveLimit: scheduler.FallbackLimit,
			CurrentValue:   req.CurrentValue,
		}, nil
	}

	effective := scheduler.NewLimitResolver(limits).Effective(residentID, limitType)
	return &dto.ValidateWorkLimitResponse{
		Allowed:        req.CurrentValue < effective,
		EffectiveLimit: effective,
		CurrentValue:   req.CurrentValue,
	}, nil
}
