package scheduler

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-program-scheduler/internal/domain/entity"
)

// The test week: Monday 2026-03-02 through Sunday 2026-03-08.
var (
	monday    = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday   = monday.AddDate(0, 0, 1)
	wednesday = monday.AddDate(0, 0, 2)
	sunday    = monday.AddDate(0, 0, 6)
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func boolPtr(b bool) *bool {
	return &b
}

// newResident builds an active resident admitted long before the test
// week, so tenure rules never interfere unless a test sets them up.
func newResident(name string) entity.Resident {
	return entity.Resident{
		ID:            uuid.New(),
		FirstName:     name,
		LastName:      "Resident",
		AdmissionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      boolPtr(true),
	}
}

// newShift builds an active shift running every day of the week with a
// single unqualified role.
func newShift(id int, name string) entity.Shift {
	return entity.Shift{
		ID:           id,
		DepartmentID: 1,
		Name:         name,
		StartTime:    "09:00",
		EndTime:      "13:00",
		Monday:       true,
		Tuesday:      true,
		Wednesday:    true,
		Thursday:     true,
		Friday:       true,
		Saturday:     true,
		Sunday:       true,
		IsActive:     boolPtr(true),
		Department:   entity.Department{ID: 1, Name: "Kitchen"},
		Roles: []entity.Role{
			{ID: id*10 + 1, ShiftID: id, Title: name + " worker", RequiredCount: 1, Position: 0},
		},
	}
}

func newCatalog(shifts []entity.Shift, residents []entity.Resident, limits []entity.WorkLimit) *Catalog {
	return &Catalog{
		Period:    &entity.SchedulePeriod{ID: 7, Name: "Test Period", StartDate: monday, EndDate: sunday},
		Shifts:    shifts,
		Residents: residents,
		Limits:    limits,
	}
}

func setupEngine(t testing.TB, catalog *Catalog) *Engine {
	t.Helper()
	return NewEngine(catalog, testLogger())
}

func TestEngineRun_FillsSingleRole(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, []entity.Resident{alice, bob}, nil)

	result := setupEngine(t, catalog).Run(monday, monday)

	require.Len(t, result.Assignments, 1)
	assert.Empty(t, result.Conflicts)

	a := result.Assignments[0]
	assert.Equal(t, 7, a.PeriodID)
	assert.Equal(t, 1, a.ShiftID)
	assert.Equal(t, "Kitchen worker", a.RoleTitle)
	assert.Equal(t, entity.AssignmentStatusScheduled, a.Status)
	assert.True(t, a.Date.Equal(monday))
}

func TestEngineRun_OneRolePerResidentPerDate(t *testing.T) {
	alice := newResident("Alice")
	catalog := newCatalog(
		[]entity.Shift{newShift(1, "Kitchen"), newShift(2, "Laundry")},
		[]entity.Resident{alice},
		nil,
	)

	result := setupEngine(t, catalog).Run(monday, monday)

	require.Len(t, result.Assignments, 1)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, entity.ConflictNoEligibleResidents, result.Conflicts[0].Type)
	assert.Equal(t, 2, result.Conflicts[0].ShiftID)
}

func TestEngineRun_RespectsWorkDayLimit(t *testing.T) {
	alice := newResident("Alice")
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, []entity.Resident{alice}, nil)

	// Default weekly ceiling is three days; the week has seven.
	result := setupEngine(t, catalog).Run(monday, sunday)

	assert.Len(t, result.Assignments, 3)
	assert.Len(t, result.Conflicts, 4)
	assert.Equal(t, 7, result.Stats.DatesProcessed)
}

func TestEngineRun_BalancesLoad(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, []entity.Resident{alice, bob}, []entity.WorkLimit{
		{LimitType: entity.LimitWeeklyDays, MaxValue: 7, IsActive: boolPtr(true)},
	})

	result := setupEngine(t, catalog).Run(monday, monday.AddDate(0, 0, 3))

	require.Len(t, result.Assignments, 4)
	perResident := map[uuid.UUID]int{}
	for _, a := range result.Assignments {
		perResident[a.ResidentID]++
	}
	assert.Equal(t, 2, perResident[alice.ID])
	assert.Equal(t, 2, perResident[bob.ID])
}

func TestEngineRun_TieKeepsCatalogOrder(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	carol := newResident("Carol")
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, []entity.Resident{alice, bob, carol}, nil)

	result := setupEngine(t, catalog).Run(monday, monday)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, alice.ID, result.Assignments[0].ResidentID)
}

func TestEngineRun_ExpandsRequiredCount(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	carol := newResident("Carol")
	shift := newShift(1, "Kitchen")
	shift.Roles[0].RequiredCount = 2

	result := setupEngine(t, newCatalog([]entity.Shift{shift}, []entity.Resident{alice, bob, carol}, nil)).Run(monday, monday)

	require.Len(t, result.Assignments, 2)
	assert.NotEqual(t, result.Assignments[0].ResidentID, result.Assignments[1].ResidentID)
	for _, a := range result.Assignments {
		assert.Equal(t, "Kitchen worker", a.RoleTitle)
	}
}

func TestEngineRun_SkipsShiftsOffWeekday(t *testing.T) {
	shift := newShift(1, "Kitchen")
	shift.Tuesday = false

	result := setupEngine(t, newCatalog([]entity.Shift{shift}, []entity.Resident{newResident("Alice")}, nil)).Run(tuesday, tuesday)

	assert.Empty(t, result.Assignments)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 1, result.Stats.DatesProcessed)
}

func TestEngineRun_EmitsConflictDetails(t *testing.T) {
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, nil, nil)

	result := setupEngine(t, catalog).Run(monday, monday)

	require.Len(t, result.Conflicts, 1)
	c := result.Conflicts[0]
	assert.Equal(t, entity.ConflictNoEligibleResidents, c.Type)
	assert.Equal(t, entity.ConflictSeverityWarning, c.Severity)
	assert.Equal(t, 1, c.ShiftID)
	assert.Equal(t, "Kitchen worker", c.RoleTitle)
	assert.True(t, c.Date.Equal(monday))
	assert.Contains(t, c.Description, "Kitchen worker")
	assert.Contains(t, c.Description, "2026-03-02")
}

func newDeliveryShift(id int) entity.Shift {
	shift := newShift(id, "Delivery")
	shift.IsDeliveryShift = true
	shift.StartTime = "08:00"
	shift.EndTime = "16:00"
	shift.Roles = []entity.Role{
		{ID: id*10 + 1, ShiftID: id, Title: "Driver", RequiredCount: 1, Position: 0},
		{ID: id*10 + 2, ShiftID: id, Title: "Loader", RequiredCount: 1, Position: 1},
	}
	return shift
}

func TestEngineRun_DeliveryTeamComplete(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")

	result := setupEngine(t, newCatalog([]entity.Shift{newDeliveryShift(1)}, []entity.Resident{alice, bob}, nil)).Run(monday, monday)

	require.Len(t, result.Assignments, 2)
	assert.Empty(t, result.Conflicts)
	assert.NotEqual(t, result.Assignments[0].ResidentID, result.Assignments[1].ResidentID)
}

func TestEngineRun_DeliveryTeamRollsBackWhenIncomplete(t *testing.T) {
	alice := newResident("Alice")
	engine := setupEngine(t, newCatalog([]entity.Shift{newDeliveryShift(1)}, []entity.Resident{alice}, nil))

	result := engine.Run(monday, monday)

	assert.Empty(t, result.Assignments)
	require.Len(t, result.Conflicts, 1)

	c := result.Conflicts[0]
	assert.Equal(t, entity.ConflictIncompleteDeliveryTeam, c.Type)
	assert.Equal(t, entity.ConflictSeverityHigh, c.Severity)
	assert.Equal(t, "Loader", c.RoleTitle)

	// The provisional driver pick must not leak into tracking state.
	assert.Equal(t, 0, engine.Tracker().DayCount(alice.ID))
}

func TestEngineRun_RolledBackResidentStaysSchedulable(t *testing.T) {
	alice := newResident("Alice")
	kitchen := newShift(2, "Kitchen")

	// The delivery shift is walked first, picks Alice as driver, then
	// fails on the loader slot. After rollback the kitchen shift must
	// still be able to use her.
	result := setupEngine(t, newCatalog([]entity.Shift{newDeliveryShift(1), kitchen}, []entity.Resident{alice}, nil)).Run(monday, monday)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, 2, result.Assignments[0].ShiftID)
	assert.Equal(t, alice.ID, result.Assignments[0].ResidentID)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, entity.ConflictIncompleteDeliveryTeam, result.Conflicts[0].Type)
}

func TestEngineRun_Deterministic(t *testing.T) {
	build := func() *Catalog {
		shifts := []entity.Shift{newShift(1, "Kitchen"), newShift(2, "Laundry"), newDeliveryShift(3)}
		residents := []entity.Resident{newResident("Alice"), newResident("Bob"), newResident("Carol"), newResident("Dan")}
		// Stable IDs so the two catalogs are byte-for-byte alike.
		for i := range residents {
			residents[i].ID = uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-00000000000%d", i+1))
		}
		return newCatalog(shifts, residents, nil)
	}

	first := setupEngine(t, build()).Run(monday, sunday)
	second := setupEngine(t, build()).Run(monday, sunday)

	require.Equal(t, len(first.Assignments), len(second.Assignments))
	for i := range first.Assignments {
		assert.Equal(t, first.Assignments[i].ResidentID, second.Assignments[i].ResidentID)
		assert.Equal(t, first.Assignments[i].ShiftID, second.Assignments[i].ShiftID)
		assert.Equal(t, first.Assignments[i].RoleTitle, second.Assignments[i].RoleTitle)
		assert.True(t, first.Assignments[i].Date.Equal(second.Assignments[i].Date))
	}
	assert.Equal(t, first.Stats, second.Stats)
}

func TestEngineRun_StatsTotals(t *testing.T) {
	alice := newResident("Alice")
	bob := newResident("Bob")
	catalog := newCatalog([]entity.Shift{newShift(1, "Kitchen")}, []entity.Resident{alice, bob}, nil)

	result := setupEngine(t, catalog).Run(monday, tuesday)

	assert.Equal(t, 2, result.Stats.AssignmentsCreated)
	assert.Equal(t, 0, result.Stats.ConflictsFound)
	assert.Equal(t, 2, result.Stats.DatesProcessed)
	// Two four-hour shifts.
	assert.True(t, result.Stats.ScheduledHours.Equal(decimal.NewFromInt(8)))
}
