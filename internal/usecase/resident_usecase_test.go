package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResidentUsecase(
	residents *mockResidentRepository,
	qualifications *mockQualificationRepository,
	grants *mockResidentQualificationRepository,
	availability *mockAvailabilityRepository,
	appointments *mockAppointmentRepository,
	audit *mockAuditService,
) ResidentUsecase {
	return NewResidentUsecase(testDB(), testLogger(), residents, qualifications, grants, availability, appointments, audit)
}

// foundResident answers lookups for exactly one resident.
func foundResident(resident *entity.Resident) *mockResidentRepository {
	return &mockResidentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Resident, error) {
			if id == resident.ID {
				return resident, nil
			}
			return nil, nil
		},
	}
}

func TestGrantQualification_RecordsGrantAndAudit(t *testing.T) {
	resident := testResident("Marcus")
	var savedGrant *entity.ResidentQualification
	var auditedAction string

	qualifications := &mockQualificationRepository{
		FindByIDFunc: func(db *gorm.DB, id int) (*entity.Qualification, error) {
			require.Equal(t, 4, id)
			return &entity.Qualification{ID: 4, Name: "Driver License", Category: entity.QualificationCategoryDriving}, nil
		},
	}
	grants := &mockResidentQualificationRepository{
		GrantFunc: func(db *gorm.DB, grant *entity.ResidentQualification) error {
			grant.ID = 9
			grant.IsActive = boolPtr(true)
			savedGrant = grant
			return nil
		},
	}
	audit := &mockAuditService{
		LogActionFunc: func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
			auditedAction = action
			assert.Nil(t, userID, "bare context carries no acting user")
			assert.Equal(t, resident.ID.String(), metadata["resident_id"])
			return nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), qualifications, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, audit)
	resp, err := u.GrantQualification(context.Background(), resident.ID, &dto.GrantQualificationRequest{
		QualificationID: 4,
		EarnedOn:        "2026-02-10",
	})

	require.NoError(t, err)
	require.NotNil(t, savedGrant)
	assert.Equal(t, resident.ID, savedGrant.ResidentID)
	assert.Equal(t, 4, savedGrant.QualificationID)
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), savedGrant.EarnedOn)
	assert.Equal(t, entity.AuditActionQualificationGrant, auditedAction)
	assert.Equal(t, "Driver License", resp.Name)
	assert.Equal(t, "2026-02-10", resp.EarnedOn)
	require.NotNil(t, resp.IsActive)
	assert.True(t, *resp.IsActive)
}

func TestGrantQualification_AlreadyGranted(t *testing.T) {
	resident := testResident("Dana")
	qualifications := &mockQualificationRepository{
		FindByIDFunc: func(db *gorm.DB, id int) (*entity.Qualification, error) {
			return &entity.Qualification{ID: id, Name: "Food Handler"}, nil
		},
	}
	grants := &mockResidentQualificationRepository{
		FindActiveGrantFunc: func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (*entity.ResidentQualification, error) {
			return &entity.ResidentQualification{ID: 3, ResidentID: residentID, QualificationID: qualificationID, IsActive: boolPtr(true)}, nil
		},
		GrantFunc: func(db *gorm.DB, grant *entity.ResidentQualification) error {
			t.Fatal("grant must not be attempted when one is already active")
			return nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), qualifications, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	_, err := u.GrantQualification(context.Background(), resident.ID, &dto.GrantQualificationRequest{QualificationID: 2})

	assert.ErrorIs(t, err, ErrQualificationAlreadyGranted)
}

func TestGrantQualification_ConcurrentDuplicateMapsToAlreadyGranted(t *testing.T) {
	resident := testResident("Priya")
	qualifications := &mockQualificationRepository{
		FindByIDFunc: func(db *gorm.DB, id int) (*entity.Qualification, error) {
			return &entity.Qualification{ID: id, Name: "Crew Lead"}, nil
		},
	}
	grants := &mockResidentQualificationRepository{
		GrantFunc: func(db *gorm.DB, grant *entity.ResidentQualification) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_resident_qualification"}
		},
	}

	u := newResidentUsecase(foundResident(&resident), qualifications, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	_, err := u.GrantQualification(context.Background(), resident.ID, &dto.GrantQualificationRequest{QualificationID: 5})

	assert.ErrorIs(t, err, ErrQualificationAlreadyGranted)
}

func TestGrantQualification_MissingTargets(t *testing.T) {
	resident := testResident("Omar")

	u := newResidentUsecase(&mockResidentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Resident, error) { return nil, nil },
	}, &mockQualificationRepository{}, &mockResidentQualificationRepository{}, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	_, err := u.GrantQualification(context.Background(), uuid.New(), &dto.GrantQualificationRequest{QualificationID: 1})
	assert.ErrorIs(t, err, ErrResidentNotFound)

	u = newResidentUsecase(foundResident(&resident), &mockQualificationRepository{
		FindByIDFunc: func(db *gorm.DB, id int) (*entity.Qualification, error) { return nil, nil },
	}, &mockResidentQualificationRepository{}, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	_, err = u.GrantQualification(context.Background(), resident.ID, &dto.GrantQualificationRequest{QualificationID: 1})
	assert.ErrorIs(t, err, ErrQualificationNotFound)
}

func TestGrantQualification_RejectsBadDate(t *testing.T) {
	resident := testResident("Lena")
	qualifications := &mockQualificationRepository{
		FindByIDFunc: func(db *gorm.DB, id int) (*entity.Qualification, error) {
			return &entity.Qualification{ID: id, Name: "Food Handler"}, nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), qualifications, &mockResidentQualificationRepository{}, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	_, err := u.GrantQualification(context.Background(), resident.ID, &dto.GrantQualificationRequest{
		QualificationID: 2,
		EarnedOn:        "02/10/2026",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestRevokeQualification_DeactivatesGrant(t *testing.T) {
	resident := testResident("Marcus")
	var revokedQualification int
	var auditedAction string

	grants := &mockResidentQualificationRepository{
		RevokeFunc: func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error) {
			assert.Equal(t, resident.ID, residentID)
			revokedQualification = qualificationID
			return 1, nil
		},
	}
	audit := &mockAuditService{
		LogActionFunc: func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
			auditedAction = action
			return nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, audit)
	err := u.RevokeQualification(context.Background(), resident.ID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, revokedQualification)
	assert.Equal(t, entity.AuditActionQualificationRevoke, auditedAction)
}

func TestRevokeQualification_NothingToRevoke(t *testing.T) {
	resident := testResident("Dana")
	grants := &mockResidentQualificationRepository{
		RevokeFunc: func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error) {
			return 0, nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, &mockAuditService{})
	err := u.RevokeQualification(context.Background(), resident.ID, 9)

	assert.ErrorIs(t, err, ErrGrantNotFound)
}

func TestRevokeQualification_AuditFailureDoesNotBlock(t *testing.T) {
	resident := testResident("Priya")
	grants := &mockResidentQualificationRepository{
		RevokeFunc: func(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error) {
			return 1, nil
		},
	}
	audit := &mockAuditService{
		LogActionFunc: func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
			return errors.New("audit table unavailable")
		},
	}

	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, grants, &mockAvailabilityRepository{}, &mockAppointmentRepository{}, audit)
	err := u.RevokeQualification(context.Background(), resident.ID, 4)

	assert.NoError(t, err)
}

func TestReplaceAvailability_SwapsWindows(t *testing.T) {
	resident := testResident("Omar")
	var saved []entity.AvailabilityWindow
	availability := &mockAvailabilityRepository{
		ReplaceForResidentFunc: func(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error {
			saved = windows
			return nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, &mockResidentQualificationRepository{}, availability, &mockAppointmentRepository{}, &mockAuditService{})
	resp, err := u.ReplaceAvailability(context.Background(), resident.ID, &dto.ReplaceAvailabilityRequest{
		Windows: []dto.AvailabilityWindowRequest{
			{DayOfWeek: 1, StartTime: "05:00", EndTime: "13:00"},
			{DayOfWeek: 3, StartTime: "08:00", EndTime: "12:00"},
		},
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, resident.ID, saved[0].ResidentID)
	assert.Equal(t, 1, saved[0].DayOfWeek)
	require.Len(t, resp, 2)
	assert.Equal(t, "13:00", resp[0].EndTime)
}

func TestReplaceAvailability_RejectsInvalidWindows(t *testing.T) {
	resident := testResident("Lena")
	availability := &mockAvailabilityRepository{
		ReplaceForResidentFunc: func(db *gorm.DB, residentID uuid.UUID, windows []entity.AvailabilityWindow) error {
			t.Error("invalid windows must not reach storage")
			return nil
		},
	}
	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, &mockResidentQualificationRepository{}, availability, &mockAppointmentRepository{}, &mockAuditService{})

	cases := []struct {
		name    string
		windows []dto.AvailabilityWindowRequest
		want    error
	}{
		{
			name:    "bad clock",
			windows: []dto.AvailabilityWindowRequest{{DayOfWeek: 1, StartTime: "5am", EndTime: "13:00"}},
			want:    ErrInvalidTimeFormat,
		},
		{
			name:    "inverted window",
			windows: []dto.AvailabilityWindowRequest{{DayOfWeek: 1, StartTime: "13:00", EndTime: "09:00"}},
			want:    ErrInvalidTimeWindow,
		},
		{
			name: "duplicate weekday",
			windows: []dto.AvailabilityWindowRequest{
				{DayOfWeek: 2, StartTime: "08:00", EndTime: "12:00"},
				{DayOfWeek: 2, StartTime: "13:00", EndTime: "17:00"},
			},
			want: ErrDuplicateWeekday,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.ReplaceAvailability(context.Background(), resident.ID, &dto.ReplaceAvailabilityRequest{Windows: tc.windows})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateAppointment_ValidatesRecurrenceRule(t *testing.T) {
	resident := testResident("Marcus")
	var saved *entity.Appointment
	appointments := &mockAppointmentRepository{
		CreateFunc: func(db *gorm.DB, appointment *entity.Appointment) error {
			appointment.ID = 21
			saved = appointment
			return nil
		},
	}

	u := newResidentUsecase(foundResident(&resident), &mockQualificationRepository{}, &mockResidentQualificationRepository{}, &mockAvailabilityRepository{}, appointments, &mockAuditService{})

	resp, err := u.CreateAppointment(context.Background(), resident.ID, &dto.CreateAppointmentRequest{
		StartAt:        "2026-03-06T14:00:00Z",
		EndAt:          "2026-03-06T15:00:00Z",
		Type:           "therapy",
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=FR",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.RecurrenceRule)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=FR", *saved.RecurrenceRule)
	assert.Equal(t, 21, resp.ID)

	_, err = u.CreateAppointment(context.Background(), resident.ID, &dto.CreateAppointmentRequest{
		StartAt:        "2026-03-06T14:00:00Z",
		EndAt:          "2026-03-06T15:00:00Z",
		Type:           "medical",
		RecurrenceRule: "FREQ=SOMETIMES",
	})
	assert.ErrorIs(t, err, ErrInvalidRecurrenceRule)
}
