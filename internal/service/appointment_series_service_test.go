package service

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-program-scheduler/internal/domain/entity"
)

func setupSeriesService(t testing.TB) *AppointmentSeriesService {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAppointmentSeriesService(log)
}

func strPtr(s string) *string {
	return &s
}

func TestMaterialize_WeeklyRuleExpandsAcrossRange(t *testing.T) {
	svc := setupSeriesService(t)

	residentID := uuid.New()
	appointments := []entity.Appointment{
		{
			ID:             1,
			ResidentID:     residentID,
			StartAt:        time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC), // Tuesday
			EndAt:          time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
			Type:           entity.AppointmentTypeTherapy,
			RecurrenceRule: strPtr("FREQ=WEEKLY;BYDAY=TU;COUNT=8"),
		},
	}

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	out := svc.Materialize(appointments, from, to)
	require.Len(t, out, 2)

	assert.Equal(t, time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC), out[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC), out[0].EndAt)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), out[1].StartAt)
	assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), out[1].EndAt)
	for _, occurrence := range out {
		assert.Nil(t, occurrence.RecurrenceRule)
		assert.Equal(t, residentID, occurrence.ResidentID)
		assert.Equal(t, entity.AppointmentTypeTherapy, occurrence.Type)
	}
}

func TestMaterialize_OneOffPassesThroughWhenInRange(t *testing.T) {
	svc := setupSeriesService(t)

	inRange := entity.Appointment{
		ID:         1,
		ResidentID: uuid.New(),
		StartAt:    time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC),
		Type:       entity.AppointmentTypeMedical,
	}
	outOfRange := entity.Appointment{
		ID:         2,
		ResidentID: uuid.New(),
		StartAt:    time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 4, 1, 11, 0, 0, 0, time.UTC),
		Type:       entity.AppointmentTypeMedical,
	}

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	out := svc.Materialize([]entity.Appointment{inRange, outOfRange}, from, to)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}

func TestMaterialize_MalformedRuleKeepsSingleOccurrence(t *testing.T) {
	svc := setupSeriesService(t)

	appointments := []entity.Appointment{
		{
			ID:             9,
			ResidentID:     uuid.New(),
			StartAt:        time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC),
			Type:           entity.AppointmentTypeLegal,
			RecurrenceRule: strPtr("every second tuesday"),
		},
	}

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	out := svc.Materialize(appointments, from, to)
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].ID)
	assert.Nil(t, out[0].RecurrenceRule)
	assert.Equal(t, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC), out[0].StartAt)
}

func TestMaterialize_OccurrenceSpillingIntoRangeIsKept(t *testing.T) {
	svc := setupSeriesService(t)

	// Nightly appointment crossing midnight. The range covers a single
	// day, so the occurrence starting the evening before still matters.
	appointments := []entity.Appointment{
		{
			ID:             3,
			ResidentID:     uuid.New(),
			StartAt:        time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC),
			Type:           entity.AppointmentTypeOther,
			RecurrenceRule: strPtr("FREQ=DAILY;COUNT=5"),
		},
	}

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	out := svc.Materialize(appointments, day, day)
	require.Len(t, out, 2)
	assert.Equal(t, time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC), out[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), out[0].EndAt)
	assert.Equal(t, time.Date(2026, 3, 3, 23, 0, 0, 0, time.UTC), out[1].StartAt)
}

func TestMaterialize_EmptyInputReturnsNothing(t *testing.T) {
	svc := setupSeriesService(t)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	out := svc.Materialize(nil, from, to)
	assert.Empty(t, out)
}
