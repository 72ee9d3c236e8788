package usecase

import (
	"context"
	"errors"
	"time"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/scheduler"
	"work-program-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRangeOutsidePeriod = errors.New("date range falls outside the period")

// GenerationStore is the storage surface one generation run needs. The
// engine itself never touches storage; everything it reads is loaded up
// front and everything it emits is persisted here afterwards.
type GenerationStore interface {
	FindPeriod(ctx context.Context, id int) (*entity.SchedulePeriod, error)
	ActiveShifts(ctx context.Context) ([]entity.Shift, error)
	ActiveResidents(ctx context.Context) ([]entity.Resident, error)
	ActiveLimits(ctx context.Context) ([]entity.WorkLimit, error)
	// ClearRun drops the period's assignments and the range's conflicts
	// in one transaction, so a rerun never doubles rows.
	ClearRun(ctx context.Context, periodID int, from, to time.Time) error
	BulkCreateAssignments(ctx context.Context, assignments []entity.ShiftAssignment) error
	CreateAssignment(ctx context.Context, assignment *entity.ShiftAssignment) error
	CreateConflicts(ctx context.Context, conflicts []entity.ScheduleConflict) error
	MarkGenerated(ctx context.Context, period *entity.SchedulePeriod) error
	PeriodWithAssignments(ctx context.Context, id int) (*entity.SchedulePeriod, error)
}

// PeriodLocker serializes generation runs per period.
type PeriodLocker interface {
	Acquire(ctx context.Context, periodID int) (func(), error)
}

type ScheduleGenerationUsecase interface {
	GenerateSchedule(ctx context.Context, periodID int, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

type scheduleGenerationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	store        GenerationStore
	locker       PeriodLocker
	series       *service.AppointmentSeriesService
	auditService service.AuditService
}

func NewScheduleGenerationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	store GenerationStore,
	locker PeriodLocker,
	series *service.AppointmentSeriesService,
	auditService service.AuditService,
) ScheduleGenerationUsecase {
	return &scheduleGenerationUsecase{
		db:           db,
		log:          log,
		store:        store,
		locker:       locker,
		series:       series,
		auditService: auditService,
	}
}

func (u *scheduleGenerationUsecase) GenerateSchedule(ctx context.Context, periodID int, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	started := time.Now()

	period, err := u.store.FindPeriod(ctx, periodID)
	if err != nil {
		u.log.Warnf("Failed to find period %d: %+v", periodID, err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	from, to, err := resolveRunRange(period, req)
	if err != nil {
		return nil, err
	}

	release, err := u.locker.Acquire(ctx, periodID)
	if err != nil {
		if !errors.Is(err, service.ErrGenerationInProgress) {
			u.log.Warnf("Failed to acquire generation lease for period %d: %+v", periodID, err)
		}
		return nil, err
	}
	defer release()

	if err := u.store.ClearRun(ctx, periodID, from, to); err != nil {
		u.log.Warnf("Failed to clear previous run for period %d: %+v", periodID, err)
		return nil, err
	}

	shifts, err := u.store.ActiveShifts(ctx)
	if err != nil {
		u.log.Warnf("Failed to load shifts: %+v", err)
		return nil, err
	}
	residents, err := u.store.ActiveResidents(ctx)
	if err != nil {
		u.log.Warnf("Failed to load residents: %+v", err)
		return nil, err
	}
	limits, err := u.store.ActiveLimits(ctx)
	if err != nil {
		u.log.Warnf("Failed to load work limits: %+v", err)
		return nil, err
	}

	// Recurring appointments become concrete dated instances before the
	// engine sees them.
	for i := range residents {
		residents[i].Appointments = u.series.Materialize(residents[i].Appointments, from, to)
	}

	engine := scheduler.NewEngine(&scheduler.Catalog{
		Period:    period,
		Shifts:    shifts,
		Residents: residents,
		Limits:    limits,
	}, u.log)
	result := engine.Run(from, to)

	assignmentsPersisted := len(result.Assignments)
	if len(result.Assignments) > 0 {
		if err := u.store.BulkCreateAssignments(ctx, result.Assignments); err != nil {
			u.log.Warnf("Bulk insert of %d assignments failed, retrying row by row: %+v", len(result.Assignments), err)
			assignmentsPersisted = u.persistOneByOne(ctx, result.Assignments)
		}
	}

	conflictsPersisted := len(result.Conflicts)
	if len(result.Conflicts) > 0 {
		if err := u.store.CreateConflicts(ctx, result.Conflicts); err != nil {
			// Conflicts are diagnostics; losing them does not invalidate
			// the assignments already saved.
			u.log.Warnf("Failed to persist %d conflicts: %+v", len(result.Conflicts), err)
			conflictsPersisted = 0
		}
	}

	period.MarkGenerated()
	if err := u.store.MarkGenerated(ctx, period); err != nil {
		u.log.Warnf("Failed to mark period %d generated: %+v", periodID, err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionScheduleGenerate, entity.JSON{
		"period_id":           periodID,
		"start_date":          from.Format("2006-01-02"),
		"end_date":            to.Format("2006-01-02"),
		"assignments_created": assignmentsPersisted,
		"conflicts_found":     conflictsPersisted,
	}); err != nil {
		u.log.Warnf("Failed to audit schedule generation: %+v", err)
	}

	u.log.Infof("Schedule generated: period_id=%d assignments=%d conflicts=%d dates=%d duration=%s",
		periodID, assignmentsPersisted, conflictsPersisted, result.Stats.DatesProcessed, time.Since(started))

	loaded, err := u.store.PeriodWithAssignments(ctx, periodID)
	if err != nil || loaded == nil {
		u.log.Warnf("Failed to reload period %d after generation: %+v", periodID, err)
		loaded = period
	}

	return &dto.GenerateScheduleResponse{
		Period: *converter.PeriodToResponse(loaded),
		Stats: dto.GenerationStatsResponse{
			AssignmentsCreated: assignmentsPersisted,
			ConflictsFound:     conflictsPersisted,
			DatesProcessed:     result.Stats.DatesProcessed,
			ScheduledHours:     result.Stats.ScheduledHours,
			DurationMS:         time.Since(started).Milliseconds(),
		},
	}, nil
}

// persistOneByOne is the fallback path after a failed bulk insert. Rows
// that fail individually are logged and dropped; the rest survive.
func (u *scheduleGenerationUsecase) persistOneByOne(ctx context.Context, assignments []entity.ShiftAssignment) int {
	persisted := 0
	for i := range assignments {
		if err := u.store.CreateAssignment(ctx, &assignments[i]); err != nil {
			u.log.Warnf("Failed to persist assignment shift=%d resident=%s date=%s: %+v",
				assignments[i].ShiftID, assignments[i].ResidentID, scheduler.DateKey(assignments[i].Date), err)
			continue
		}
		persisted++
	}
	return persisted
}

func resolveRunRange(period *entity.SchedulePeriod, req *dto.GenerateScheduleRequest) (time.Time, time.Time, error) {
	from := scheduler.Day(period.StartDate)
	to := scheduler.Day(period.EndDate)

	if req != nil && req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateFormat
		}
		from = parsed
	}
	if req != nil && req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateFormat
		}
		to = parsed
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if from.Before(scheduler.Day(period.StartDate)) || to.After(scheduler.Day(period.EndDate)) {
		return time.Time{}, time.Time{}, ErrRangeOutsidePeriod
	}
	return from, to, nil
}
