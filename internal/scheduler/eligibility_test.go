package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-program-scheduler/internal/domain/entity"
)

func setupEvaluator(limits []entity.WorkLimit, runs map[int][]DeliveryRun) (*Evaluator, *Tracker) {
	return NewEvaluator(NewLimitResolver(limits), runs, testLogger()), NewTracker()
}

func TestEligibility_MissingAvailabilityDoesNotConstrain(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	shift := newShift(1, "Kitchen")

	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
}

func TestEligibility_AvailabilityContainment(t *testing.T) {
	tests := []struct {
		name       string
		availStart string
		availEnd   string
		eligible   bool
	}{
		{"window equals shift", "09:00", "13:00", true},
		{"window wider than shift", "08:00", "14:00", true},
		{"window starts after shift", "10:00", "14:00", false},
		{"window ends before shift", "08:00", "12:00", false},
		{"window disjoint from shift", "14:00", "18:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, tracker := setupEvaluator(nil, nil)
			alice := newResident("Alice")
			alice.Availability = []entity.AvailabilityWindow{
				{ResidentID: alice.ID, DayOfWeek: int(time.Monday), StartTime: tt.availStart, EndTime: tt.availEnd},
			}
			shift := newShift(1, "Kitchen")

			assert.Equal(t, tt.eligible, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
		})
	}
}

func TestEligibility_AvailabilityOnlyChecksMatchingWeekday(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	// Tuesday is restricted; Monday has no record and stays open.
	alice.Availability = []entity.AvailabilityWindow{
		{ResidentID: alice.ID, DayOfWeek: int(time.Tuesday), StartTime: "14:00", EndTime: "18:00"},
	}
	shift := newShift(1, "Kitchen")

	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_AppointmentBlocksSameDate(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	alice.Appointments = []entity.Appointment{
		{ResidentID: alice.ID, StartAt: monday.Add(15 * time.Hour), EndAt: monday.Add(16 * time.Hour), Type: entity.AppointmentTypeMedical},
	}
	shift := newShift(1, "Kitchen")

	// The appointment is outside the shift's clock window but on the
	// same calendar date, which is what the rule keys on.
	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_QualificationRequirement(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	qualID := 42
	shift := newShift(1, "Delivery")
	shift.Roles[0].QualificationID = &qualID

	unqualified := newResident("Alice")
	assert.False(t, ev.IsEligible(&unqualified, &shift, &shift.Roles[0], monday, tracker))

	revoked := newResident("Bob")
	revoked.Qualifications = []entity.ResidentQualification{
		{ResidentID: revoked.ID, QualificationID: qualID, IsActive: boolPtr(false)},
	}
	assert.False(t, ev.IsEligible(&revoked, &shift, &shift.Roles[0], monday, tracker))

	qualified := newResident("Carol")
	qualified.Qualifications = []entity.ResidentQualification{
		{ResidentID: qualified.ID, QualificationID: qualID, IsActive: boolPtr(true)},
	}
	assert.True(t, ev.IsEligible(&qualified, &shift, &shift.Roles[0], monday, tracker))
}

func TestEligibility_TenureUsesAverageMonthLength(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	shift := newShift(1, "Kitchen")
	shift.MinTenureMonths = 1

	// 31 days is 1.018 average months, 30 days only 0.986.
	seasoned := newResident("Alice")
	seasoned.AdmissionDate = monday.AddDate(0, 0, -31)
	assert.True(t, ev.IsEligible(&seasoned, &shift, &shift.Roles[0], monday, tracker))

	fresh := newResident("Bob")
	fresh.AdmissionDate = monday.AddDate(0, 0, -30)
	assert.False(t, ev.IsEligible(&fresh, &shift, &shift.Roles[0], monday, tracker))
}

func TestEligibility_WorkDayLimitCountsDistinctDates(t *testing.T) {
	ev, tracker := setupEvaluator([]entity.WorkLimit{
		{LimitType: entity.LimitWeeklyDays, MaxValue: 2, IsActive: boolPtr(true)},
	}, nil)
	alice := newResident("Alice")
	shift := newShift(1, "Kitchen")

	tracker.Assign(alice.ID, monday)
	tracker.Assign(alice.ID, tuesday)

	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], wednesday, tracker))
}

func TestEligibility_IndividualLimitOverridesGlobal(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	ev, tracker := setupEvaluator([]entity.WorkLimit{
		{ResidentID: &alice.ID, LimitType: entity.LimitWeeklyDays, MaxValue: 1, IsActive: boolPtr(true)},
		{LimitType: entity.LimitWeeklyDays, MaxValue: 5, IsActive: boolPtr(true)},
	}, nil)
	shift := newShift(1, "Kitchen")

	tracker.Assign(alice.ID, monday)
	tracker.Assign(bob.ID, monday)

	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
	assert.True(t, ev.IsEligible(&bob, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_DeliveryBlocksAnyAppointmentOnDate(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	alice.Appointments = []entity.Appointment{
		{ResidentID: alice.ID, StartAt: monday.Add(18 * time.Hour), EndAt: monday.Add(19 * time.Hour), Type: entity.AppointmentTypeFamily},
	}
	shift := newDeliveryShift(1)

	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_DeliveryRunOverlapCatchesSpanningAppointment(t *testing.T) {
	runs := map[int][]DeliveryRun{
		1: {{Name: "morning", Start: "08:30", End: "10:00"}},
	}
	ev, tracker := setupEvaluator(nil, runs)

	// The appointment starts Monday evening and runs into Tuesday
	// morning. Its calendar day is Monday, so the date rule alone would
	// let Tuesday through; the run overlap check must not.
	alice := newResident("Alice")
	alice.Appointments = []entity.Appointment{
		{ResidentID: alice.ID, StartAt: monday.Add(23 * time.Hour), EndAt: tuesday.Add(9 * time.Hour), Type: entity.AppointmentTypeMedical},
	}
	shift := newDeliveryShift(1)

	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_DeliveryRunNoOverlapPasses(t *testing.T) {
	runs := map[int][]DeliveryRun{
		1: {{Name: "morning", Start: "08:30", End: "10:00"}},
	}
	ev, tracker := setupEvaluator(nil, runs)

	alice := newResident("Alice")
	alice.Appointments = []entity.Appointment{
		{ResidentID: alice.ID, StartAt: monday.Add(23 * time.Hour), EndAt: tuesday.Add(8 * time.Hour), Type: entity.AppointmentTypeMedical},
	}
	shift := newDeliveryShift(1)

	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestEligibility_AlreadyUsedOnDate(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	shift := newShift(1, "Kitchen")

	tracker.Assign(alice.ID, monday)

	assert.False(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker))
	assert.True(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], tuesday, tracker))
}

func TestExplain_AgreesWithIsEligible(t *testing.T) {
	qualID := 42
	ev, tracker := setupEvaluator(nil, nil)
	shift := newShift(1, "Kitchen")
	shift.Roles[0].QualificationID = &qualID

	alice := newResident("Alice")
	alice.Appointments = []entity.Appointment{
		{ResidentID: alice.ID, StartAt: monday.Add(10 * time.Hour), EndAt: monday.Add(11 * time.Hour), Type: entity.AppointmentTypeLegal},
	}

	eligible, reasons := ev.Explain(&alice, &shift, &shift.Roles[0], monday, tracker)
	assert.False(t, eligible)
	assert.Equal(t, ev.IsEligible(&alice, &shift, &shift.Roles[0], monday, tracker), eligible)
	// Both the qualification gap and the appointment must be reported.
	require.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "qualification")
	assert.Contains(t, reasons[1], "appointment")
}

func TestExplain_PassReturnsNoReasons(t *testing.T) {
	ev, tracker := setupEvaluator(nil, nil)
	alice := newResident("Alice")
	shift := newShift(1, "Kitchen")

	eligible, reasons := ev.Explain(&alice, &shift, &shift.Roles[0], monday, tracker)
	assert.True(t, eligible)
	assert.Empty(t, reasons)
}
