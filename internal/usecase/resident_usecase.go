package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/delivery/http/middleware"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/domain/repository"
	"work-program-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

var (
	ErrResidentNotFound            = errors.New("resident not found")
	ErrResidentAlreadyInactive     = errors.New("resident is already inactive")
	ErrQualificationNotFound       = errors.New("qualification not found")
	ErrQualificationAlreadyGranted = errors.New("qualification already granted")
	ErrGrantNotFound               = errors.New("no active grant to revoke")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrInvalidDateFormat           = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat           = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeWindow           = errors.New("window end must be after its start")
	ErrDuplicateWeekday            = errors.New("duplicate weekday in availability windows")
	ErrInvalidTimestamp            = errors.New("invalid timestamp, use RFC 3339")
	ErrInvalidRecurrenceRule       = errors.New("invalid recurrence rule")
)

type ResidentUsecase interface {
	CreateResident(ctx context.Context, req *dto.CreateResidentRequest) (*dto.ResidentResponse, error)
	GetAllResidents(ctx context.Context) (*dto.ResidentListResponse, error)
	GetResident(ctx context.Context, id uuid.UUID) (*dto.ResidentResponse, error)
	DeactivateResident(ctx context.Context, id uuid.UUID) error
	GrantQualification(ctx context.Context, residentID uuid.UUID, req *dto.GrantQualificationRequest) (*dto.ResidentQualificationResponse, error)
	RevokeQualification(ctx context.Context, residentID uuid.UUID, qualificationID int) error
	ReplaceAvailability(ctx context.Context, residentID uuid.UUID, req *dto.ReplaceAvailabilityRequest) ([]dto.AvailabilityWindowResponse, error)
	CreateAppointment(ctx context.Context, residentID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetResidentAppointments(ctx context.Context, residentID uuid.UUID) (*dto.AppointmentListResponse, error)
	DeleteAppointment(ctx context.Context, residentID uuid.UUID, appointmentID int) error
}

type residentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	residentRepo      repository.ResidentRepository
	qualificationRepo repository.QualificationRepository
	grantRepo         repository.ResidentQualificationRepository
	availabilityRepo  repository.AvailabilityRepository
	appointmentRepo   repository.AppointmentRepository
	auditService      service.AuditService
}

func NewResidentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	residentRepo repository.ResidentRepository,
	qualificationRepo repository.QualificationRepository,
	grantRepo repository.ResidentQualificationRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ResidentUsecase {
	return &residentUsecase{
		db:                db,
		log:               log,
		residentRepo:      residentRepo,
		qualificationRepo: qualificationRepo,
		grantRepo:         grantRepo,
		availabilityRepo:  availabilityRepo,
		appointmentRepo:   appointmentRepo,
		auditService:      auditService,
	}
}

func (u *residentUsecase) CreateResident(ctx context.Context, req *dto.CreateResidentRequest) (*dto.ResidentResponse, error) {
	admission, err := time.Parse("2006-01-02", req.AdmissionDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	resident := &entity.Resident{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		AdmissionDate: admission,
	}

	if err := u.residentRepo.Create(u.db.WithContext(ctx), resident); err != nil {
		u.log.Warnf("Failed to create resident: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionResidentCreate,
		"resident", resident.ID.String(), resident.FullName()); err != nil {
		u.log.Warnf("Failed to audit resident create: %+v", err)
	}

	return converter.ResidentToResponse(resident), nil
}

func (u *residentUsecase) GetAllResidents(ctx context.Context) (*dto.ResidentListResponse, error) {
	residents, err := u.residentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all residents: %+v", err)
		return nil, err
	}

	return &dto.ResidentListResponse{
		Residents: converter.ResidentsToResponses(residents),
		Total:     len(residents),
	}, nil
}

func (u *residentUsecase) GetResident(ctx context.Context, id uuid.UUID) (*dto.ResidentResponse, error) {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", id, err)
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	return converter.ResidentToResponse(resident), nil
}

func (u *residentUsecase) DeactivateResident(ctx context.Context, id uuid.UUID) error {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", id, err)
		return err
	}
	if resident == nil {
		return ErrResidentNotFound
	}

	rows, err := u.residentRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate resident %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrResidentAlreadyInactive
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionResidentDeactivate,
		"resident", id.String(), resident.FullName()); err != nil {
		u.log.Warnf("Failed to audit resident deactivate: %+v", err)
	}

	return nil
}

func (u *residentUsecase) GrantQualification(ctx context.Context, residentID uuid.UUID, req *dto.GrantQualificationRequest) (*dto.ResidentQualificationResponse, error) {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	qualification, err := u.qualificationRepo.FindByID(u.db.WithContext(ctx), req.QualificationID)
	if err != nil {
		u.log.Warnf("Failed to find qualification %d: %+v", req.QualificationID, err)
		return nil, err
	}
	if qualification == nil {
		return nil, ErrQualificationNotFound
	}

	existing, err := u.grantRepo.FindActiveGrant(u.db.WithContext(ctx), residentID, req.QualificationID)
	if err != nil {
		u.log.Warnf("Failed to check existing grant: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrQualificationAlreadyGranted
	}

	earnedOn := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EarnedOn != "" {
		earnedOn, err = time.Parse("2006-01-02", req.EarnedOn)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	grant := &entity.ResidentQualification{
		ResidentID:      residentID,
		QualificationID: req.QualificationID,
		EarnedOn:        earnedOn,
	}

	if err := u.grantRepo.Grant(u.db.WithContext(ctx), grant); err != nil {
		// A concurrent grant of the same pair trips the unique index
		if isDuplicateKeyError(err, "resident_qualification") {
			return nil, ErrQualificationAlreadyGranted
		}
		u.log.Warnf("Failed to grant qualification %d to resident %s: %+v", req.QualificationID, residentID, err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionQualificationGrant, entity.JSON{
		"resident_id":      residentID.String(),
		"qualification_id": req.QualificationID,
		"earned_on":        earnedOn.Format("2006-01-02"),
	}); err != nil {
		u.log.Warnf("Failed to audit qualification grant: %+v", err)
	}

	return &dto.ResidentQualificationResponse{
		QualificationID: req.QualificationID,
		Name:            qualification.Name,
		Category:        qualification.Category,
		EarnedOn:        earnedOn.Format("2006-01-02"),
		IsActive:        grant.IsActive,
	}, nil
}

func (u *residentUsecase) RevokeQualification(ctx context.Context, residentID uuid.UUID, qualificationID int) error {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
		return err
	}
	if resident == nil {
		return ErrResidentNotFound
	}

	rows, err := u.grantRepo.Revoke(u.db.WithContext(ctx), residentID, qualificationID)
	if err != nil {
		u.log.Warnf("Failed to revoke qualification %d from resident %s: %+v", qualificationID, residentID, err)
		return err
	}
	if rows == 0 {
		return ErrGrantNotFound
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionQualificationRevoke, entity.JSON{
		"resident_id":      residentID.String(),
		"qualification_id": qualificationID,
	}); err != nil {
		u.log.Warnf("Failed to audit qualification revoke: %+v", err)
	}

	return nil
}

func (u *residentUsecase) ReplaceAvailability(ctx context.Context, residentID uuid.UUID, req *dto.ReplaceAvailabilityRequest) ([]dto.AvailabilityWindowResponse, error) {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	seen := make(map[int]bool, len(req.Windows))
	windows := make([]entity.AvailabilityWindow, 0, len(req.Windows))
	for _, w := range req.Windows {
		start, err := entity.ClockMinutes(w.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := entity.ClockMinutes(w.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if end <= start {
			return nil, ErrInvalidTimeWindow
		}
		if seen[w.DayOfWeek] {
			return nil, ErrDuplicateWeekday
		}
		seen[w.DayOfWeek] = true

		windows = append(windows, entity.AvailabilityWindow{
			ResidentID: residentID,
			DayOfWeek:  w.DayOfWeek,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
		})
	}

	if err := u.availabilityRepo.ReplaceForResident(u.db.WithContext(ctx), residentID, windows); err != nil {
		u.log.Warnf("Failed to replace availability for resident %s: %+v", residentID, err)
		return nil, err
	}

	responses := make([]dto.AvailabilityWindowResponse, len(windows))
	for i, w := range windows {
		responses[i] = dto.AvailabilityWindowResponse{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		}
	}
	return responses, nil
}

func (u *residentUsecase) CreateAppointment(ctx context.Context, residentID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	if !endAt.After(startAt) {
		return nil, ErrInvalidTimeWindow
	}

	appointment := &entity.Appointment{
		ResidentID: residentID,
		StartAt:    startAt,
		EndAt:      endAt,
		Type:       entity.AppointmentType(req.Type),
	}

	// Reject bad rules at the door; the generation run still tolerates
	// bad rows that arrived some other way.
	if req.RecurrenceRule != "" {
		if _, err := rrule.StrToRRule(req.RecurrenceRule); err != nil {
			return nil, ErrInvalidRecurrenceRule
		}
		rule := req.RecurrenceRule
		appointment.RecurrenceRule = &rule
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isForeignKeyError(err, "resident") {
			return nil, ErrResidentNotFound
		}
		u.log.Warnf("Failed to create appointment for resident %s: %+v", residentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *residentUsecase) GetResidentAppointments(ctx context.Context, residentID uuid.UUID) (*dto.AppointmentListResponse, error) {
	resident, err := u.residentRepo.FindByID(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find resident %s: %+v", residentID, err)
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	appointments, err := u.appointmentRepo.FindByResident(u.db.WithContext(ctx), residentID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for resident %s: %+v", residentID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *residentUsecase) DeleteAppointment(ctx context.Context, residentID uuid.UUID, appointmentID int) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), appointmentID, residentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// auditActor resolves the acting staff user from the request context.
// CLI invocations carry no user; their audit rows get a nil actor.
func auditActor(ctx context.Context) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
