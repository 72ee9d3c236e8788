package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/domain/repository"
	"work-program-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPeriodNotFound   = errors.New("schedule period not found")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

type SchedulePeriodUsecase interface {
	CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error)
	GetAllPeriods(ctx context.Context) (*dto.PeriodListResponse, error)
	GetPeriod(ctx context.Context, id int) (*dto.PeriodResponse, error)
	GetPeriodConflicts(ctx context.Context, periodID int) (*dto.ConflictListResponse, error)
	GetAssignments(ctx context.Context, filter *entity.AssignmentFilter) (*dto.AssignmentListResponse, error)
}

type schedulePeriodUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	periodRepo     repository.SchedulePeriodRepository
	assignmentRepo repository.ShiftAssignmentRepository
	conflictRepo   repository.ScheduleConflictRepository
	auditService   service.AuditService
}

func NewSchedulePeriodUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	periodRepo repository.SchedulePeriodRepository,
	assignmentRepo repository.ShiftAssignmentRepository,
	conflictRepo repository.ScheduleConflictRepository,
	auditService service.AuditService,
) SchedulePeriodUsecase {
	return &schedulePeriodUsecase{
		db:             db,
		log:            log,
		periodRepo:     periodRepo,
		assignmentRepo: assignmentRepo,
		conflictRepo:   conflictRepo,
		auditService:   auditService,
	}
}

func (u *schedulePeriodUsecase) CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	period := &entity.SchedulePeriod{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    entity.PeriodStatusDraft,
	}

	if err := u.periodRepo.Create(u.db.WithContext(ctx), period); err != nil {
		u.log.Warnf("Failed to create schedule period: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionPeriodCreate,
		"schedule_period", strconv.Itoa(period.ID), period.Name); err != nil {
		u.log.Warnf("Failed to audit period create: %+v", err)
	}

	return converter.PeriodToResponse(period), nil
}

func (u *schedulePeriodUsecase) GetAllPeriods(ctx context.Context) (*dto.PeriodListResponse, error) {
	periods, err := u.periodRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all periods: %+v", err)
		return nil, err
	}

	return &dto.PeriodListResponse{
		Periods: converter.PeriodsToResponses(periods),
		Total:   len(periods),
	}, nil
}

func (u *schedulePeriodUsecase) GetPeriod(ctx context.Context, id int) (*dto.PeriodResponse, error) {
	period, err := u.periodRepo.FindByIDWithAssignments(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find period %d: %+v", id, err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	return converter.PeriodToResponse(period), nil
}

func (u *schedulePeriodUsecase) GetPeriodConflicts(ctx context.Context, periodID int) (*dto.ConflictListResponse, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period %d: %+v", periodID, err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	conflicts, err := u.conflictRepo.FindInRange(u.db.WithContext(ctx), period.StartDate, period.EndDate)
	if err != nil {
		u.log.Warnf("Failed to find conflicts for period %d: %+v", periodID, err)
		return nil, err
	}

	return &dto.ConflictListResponse{
		Conflicts: converter.ConflictsToResponses(conflicts),
		Total:     len(conflicts),
	}, nil
}

func (u *schedulePeriodUsecase) GetAssignments(ctx context.Context, filter *entity.AssignmentFilter) (*dto.AssignmentListResponse, error) {
	assignments, err := u.assignmentRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find assignments: %+v", err)
		return nil, err
	}

	return &dto.AssignmentListResponse{
		Assignments: converter.AssignmentsToResponses(assignments),
		Total:       len(assignments),
	}, nil
}
