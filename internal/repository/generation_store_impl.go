package repository

import (
	"context"
	"time"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"
	"work-program-scheduler/internal/usecase"

	"gorm.io/gorm"
)

// generationStore bundles the repositories a generation run reads and
// writes behind one context-aware surface.
type generationStore struct {
	db             *gorm.DB
	periodRepo     domainRepo.SchedulePeriodRepository
	shiftRepo      domainRepo.ShiftRepository
	residentRepo   domainRepo.ResidentRepository
	workLimitRepo  domainRepo.WorkLimitRepository
	assignmentRepo domainRepo.ShiftAssignmentRepository
	conflictRepo   domainRepo.ScheduleConflictRepository
}

func NewGenerationStore(
	db *gorm.DB,
	periodRepo domainRepo.SchedulePeriodRepository,
	shiftRepo domainRepo.ShiftRepository,
	residentRepo domainRepo.ResidentRepository,
	workLimitRepo domainRepo.WorkLimitRepository,
	assignmentRepo domainRepo.ShiftAssignmentRepository,
	conflictRepo domainRepo.ScheduleConflictRepository,
) usecase.GenerationStore {
	return &generationStore{
		db:             db,
		periodRepo:     periodRepo,
		shiftRepo:      shiftRepo,
		residentRepo:   residentRepo,
		workLimitRepo:  workLimitRepo,
		assignmentRepo: assignmentRepo,
		conflictRepo:   conflictRepo,
	}
}

func (s *generationStore) FindPeriod(ctx context.Context, id int) (*entity.SchedulePeriod, error) {
	return s.periodRepo.FindByID(s.db.WithContext(ctx), id)
}

func (s *generationStore) ActiveShifts(ctx context.Context) ([]entity.Shift, error) {
	return s.shiftRepo.FindActiveWithRoles(s.db.WithContext(ctx))
}

func (s *generationStore) ActiveResidents(ctx context.Context) ([]entity.Resident, error) {
	return s.residentRepo.FindActiveForScheduling(s.db.WithContext(ctx))
}

func (s *generationStore) ActiveLimits(ctx context.Context) ([]entity.WorkLimit, error) {
	return s.workLimitRepo.FindActive(s.db.WithContext(ctx))
}

// ClearRun wipes the period's assignments and the range's conflicts in
// one transaction. Either both deletions land or neither does.
func (s *generationStore) ClearRun(ctx context.Context, periodID int, from, to time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.assignmentRepo.DeleteByPeriod(tx, periodID); err != nil {
			return err
		}
		if _, err := s.conflictRepo.DeleteInRange(tx, from, to); err != nil {
			return err
		}
		return nil
	})
}

func (s *generationStore) BulkCreateAssignments(ctx context.Context, assignments []entity.ShiftAssignment) error {
	return s.assignmentRepo.BulkCreate(s.db.WithContext(ctx), assignments)
}

func (s *generationStore) CreateAssignment(ctx context.Context, assignment *entity.ShiftAssignment) error {
	return s.assignmentRepo.Create(s.db.WithContext(ctx), assignment)
}

func (s *generationStore) CreateConflicts(ctx context.Context, conflicts []entity.ScheduleConflict) error {
	return s.conflictRepo.BulkCreate(s.db.WithContext(ctx), conflicts)
}

func (s *generationStore) MarkGenerated(ctx context.Context, period *entity.SchedulePeriod) error {
	return s.periodRepo.Update(s.db.WithContext(ctx), period)
}

func (s *generationStore) PeriodWithAssignments(ctx context.Context, id int) (*entity.SchedulePeriod, error) {
	return s.periodRepo.FindByIDWithAssignments(s.db.WithContext(ctx), id)
}
