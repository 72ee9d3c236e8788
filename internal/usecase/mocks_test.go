package usecase

import (
	"context"
	"time"

	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// testDB builds a gorm handle that can produce sessions but must never
// reach a connection. Mocks receive it and ignore it.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

type mockGenerationStore struct {
	FindPeriodFunc            func(ctx context.Context, id int) (*entity.SchedulePeriod, error)
	ActiveShiftsFunc          func(ctx context.Context) ([]entity.Shift, error)
	ActiveResidentsFunc       func(ctx context.Context) ([]entity.Resident, error)
	ActiveLimitsFunc          func(ctx context.Context) ([]entity.WorkLimit, error)
	ClearRunFunc              func(ctx context.Context, periodID int, from, to time.Time) error
	BulkCreateAssignmentsFunc func(ctx context.Context, assignments []entity.ShiftAssignment) error
	CreateAssignmentFunc      func(ctx context.Context, assignment *entity.ShiftAssignment) error
	CreateConflictsFunc       func(ctx context.Context, conflicts []entity.ScheduleConflict) error
	MarkGeneratedFunc         func(ctx context.Context, period *entity.SchedulePeriod) error
	PeriodWithAssignmentsFunc func(ctx context.Context, id int) (*entity.SchedulePeriod, error)
}

func (m *mockGenerationStore) FindPeriod(ctx context.Context, id int) (*entity.SchedulePeriod, error) {
	return m.FindPeriodFunc(ctx, id)
}

func (m *mockGenerationStore) ActiveShifts(ctx context.Context) ([]entity.Shift, error) {
	if m.ActiveShiftsFunc != nil {
		return m.ActiveShiftsFunc(ctx)
	}
	return nil, nil
}

func (m *mockGenerationStore) ActiveResidents(ctx context.Context) ([]entity.Resident, error) {
	if m.ActiveResidentsFunc != nil {
		return m.ActiveResidentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockGenerationStore) ActiveLimits(ctx context.Context) ([]entity.WorkLimit, error) {
	if m.ActiveLimitsFunc != nil {
		return m.ActiveLimitsFunc(ctx)
	}
	return nil, nil
}

func (m *mockGenerationStore) ClearRun(ctx context.Context, periodID int, from, to time.Time) error {
	if m.ClearRunFunc != nil {
		return m.ClearRunFunc(ctx, periodID, from, to)
	}
	return nil
}

func (m *mockGenerationStore) BulkCreateAssignments(ctx context.Context, assignments []entity.ShiftAssignment) error {
	if m.BulkCreateAssignmentsFunc != nil {
		return m.BulkCreateAssignmentsFunc(ctx, assignments)
	}
	return nil
}

func (m *mockGenerationStore) CreateAssignment(ctx context.Context, assignment *entity.ShiftAssignment) error {
	if m.CreateAssignmentFunc != nil {
		return m.CreateAssignmentFunc(ctx, assignment)
	}
	return nil
}

func (m *mockGenerationStore) CreateConflicts(ctx context.Context, conflicts []entity.ScheduleConflict) error {
	if m.CreateConflictsFunc != nil {
		return m.CreateConflictsFunc(ctx, conflicts)
	}
	return nil
}

func (m *mockGenerationStore) MarkGenerated(ctx context.Context, period *entity.SchedulePeriod) error {
	if m.MarkGeneratedFunc != nil {
		return m.MarkGeneratedFunc(ctx, period)
	}
	return nil
}

func (m *mockGenerationStore) PeriodWithAssignments(ctx context.Context, id int) (*entity.SchedulePeriod, error) {
	if m.PeriodWithAssignmentsFunc != nil {
		return m.PeriodWithAssignmentsFunc(ctx, id)
	}
	return nil, nil
}

type mockPeriodLocker struct {
	AcquireFunc func(ctx context.Context, periodID int) (func(), error)
}

func (m *mockPeriodLocker) Acquire(ctx context.Context, periodID int) (func(), error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, periodID)
	}
	return func() {}, nil
}

type mockAuditService struct {
	LogActionFunc func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.LogAction(ctx, tx, userID, action, entity.JSON{"entity": entityName, "entity_id": entityID, "new_value": newValue})
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.LogAction(ctx, tx, userID, action, entity.JSON{"entity": entityName, "entity_id": entityID, "old_value": oldValue})
}

func (m *mockAuditService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	if m.LogActionFunc != nil {
		return m.LogActionFunc(ctx, tx, userID, action, metadata)
	}
	return nil
}

type mockWorkLimitRepository struct {
	CreateFunc                func(db *gorm.DB, limit *entity.WorkLimit) error
	FindAllFunc               func(db *gorm.DB) ([]entity.WorkLimit, error)
	FindActiveFunc            func(db *gorm.DB) ([]entity.WorkLimit, error)
	FindActiveForResidentFunc func(db *gorm.DB, residentID uuid.UUID) ([]entity.WorkLimit, error)
	DeleteFunc                func(db *gorm.DB, id int) (int64, error)
}

func (m *mockWorkLimitRepository) Create(db *gorm.DB, limit *entity.WorkLimit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, limit)
	}
	return nil
}

func (m *mockWorkLimitRepository) FindAll(db *gorm.DB) ([]entity.WorkLimit, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

func (m *mockWorkLimitRepository) FindActive(db *gorm.DB) ([]entity.WorkLimit, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(db)
	}
	return nil, nil
}

func (m *mockWorkLimitRepository) FindActiveForResident(db *gorm.DB, residentID uuid.UUID) ([]entity.WorkLimit, error) {
	return m.FindActiveForResidentFunc(db, residentID)
}

func (m *mockWorkLimitRepository) Delete(db *gorm.DB, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return 0, nil
}

type mockResidentRepository struct {
	CreateFunc                  func(db *gorm.DB, resident *entity.Resident) error
	FindByIDFunc                func(db *gorm.DB, id uuid.UUID) (*entity.Resident, error)
	FindAllFunc                 func(db *gorm.DB) ([]entity.Resident, error)
	FindActiveForSchedulingFunc func(db *gorm.DB) ([]entity.Resident, error)
	DeactivateFunc              func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockResidentRepository) Create(db *gorm.DB, resident *entity.Resident) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, resident)
	}
	return nil
}

func (m *mockResidentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Resident, error) {
	return m.FindByIDFunc(db, id)
}

func (m *mockResidentRepository) FindAll(db *gorm.DB) ([]entity.Resident, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

func (m *mockResidentRepository) FindActiveForScheduling(db *gorm.DB) ([]entity.Resident, error) {
	if m.FindActiveForSchedulingFunc != nil {
		return m.FindActiveForSchedulingFunc(db)
	}
	return nil, nil
}

func (m *mockResidentRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(db, id)
	}
	return 0, nil
}

type mockQualificationRepository struct {
	FindByIDFunc func(db *gorm.DB, id int) (*entity.Qualification, error)
	FindAllFunc  func(db *gorm.DB) ([]entity.Qualification, error)
}

func (m *mockQualificationRepository) FindByID(db *gorm.DB, id int) (*entity.Qualification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, nil
}

func (m *mockQualificationRepository) FindAll(db *gorm.DB) ([]entity.Qualification, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

type mockResidentQualificationRepository struct {
	GrantFunc           func(db *gorm.DB, grant *entity.ResidentQualification) error
	RevokeFunc          func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error)
	FindByResidentFunc  func(db *gorm.DB, residentID uuid.UUID) ([]entity.ResidentQualification, error)
	FindActiveGrantFunc func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (*entity.ResidentQualification, error)
}

func (m *mockResidentQualificationRepository) Grant(db *gorm.DB, grant *entity.ResidentQualification) error {
	if m.GrantFunc != nil {
		return m.GrantFunc(db, grant)
	}
	return nil
}

func (m *mockResidentQualificationRepository) Revoke(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error) {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(db, residentID, qualificationID)
	}
	return 0, nil
}

func (m *mockResidentQualificationRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.ResidentQualification, error) {
	if m.FindByResidentFunc != nil {
		return m.FindByResidentFunc(db, residentID)
	}
	return nil, nil
}

func (m *mockResidentQualificationRepository) FindActiveGrant(db *gorm.DB, residentID uuid.UUID, qualificationID int) (*entity.ResidentQualification, error) {
	if m.FindActiveGrantFunc != nil {
		return m.FindActiveGrantFunc(db, residentID, qualificationID)
	}
	return nil, nil
}

type mockAvailabilityRepository struct {
	ReplaceForResidentFunc func(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error
	FindByResidentFunc     func(db *gorm.DB, residentID uuid.UUID) ([]entity.AvailabilityWindow, error)
}

func (m *mockAvailabilityRepository) ReplaceForResident(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error {
	if m.ReplaceForResidentFunc != nil {
		return m.ReplaceForResidentFunc(db, residentID, windows)
	}
	return nil
}

func (m *mockAvailabilityRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	if m.FindByResidentFunc != nil {
		return m.FindByResidentFunc(db, residentID)
	}
	return nil, nil
}

type mockAppointmentRepository struct {
	CreateFunc         func(db *gorm.DB, appointment *entity.Appointment) error
	FindByResidentFunc func(db *gorm.DB, residentID uuid.UUID) ([]entity.Appointment, error)
	DeleteFunc         func(db *gorm.DB, id int, residentID uuid.UUID) (int64, error)
}

func (m *mockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByResidentFunc != nil {
		return m.FindByResidentFunc(db, residentID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) Delete(db *gorm.DB, id int, residentID uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id, residentID)
	}
	return 0, nil
}
