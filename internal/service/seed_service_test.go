package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedFixture = `
departments:
  - name: Kitchen
    priority: 1

qualifications:
  - name: Food Handler
    category: general

shifts:
  - department: Kitchen
    name: Breakfast Prep
    start_time: "05:30"
    end_time: "09:30"
    days: [monday, tuesday]
    delivery: true
    runs:
      - name: North Route
        start: "07:30"
        end: "10:30"
    roles:
      - title: Cook
        qualification: Food Handler
        required_count: 2
        position: 1

residents:
  - first_name: Dana
    last_name: Ortiz
    admission_date: "2026-01-12"
    qualifications: [Food Handler]
    availability:
      - day: monday
        start_time: "05:00"
        end_time: "13:00"
    appointments:
      - start_at: "2026-03-06T14:00:00Z"
        end_at: "2026-03-06T15:00:00Z"
        type: therapy
        recurrence_rule: "FREQ=WEEKLY;BYDAY=FR"

work_limits:
  - type: weekly_days
    max_value: 3
`

func TestLoadSeedFile_DecodesFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedFixture), 0o644))

	file, err := LoadSeedFile(path)
	require.NoError(t, err)

	require.Len(t, file.Departments, 1)
	assert.Equal(t, "Kitchen", file.Departments[0].Name)

	require.Len(t, file.Shifts, 1)
	shift := file.Shifts[0]
	assert.Equal(t, []string{"monday", "tuesday"}, shift.Days)
	assert.True(t, shift.Delivery)
	require.Len(t, shift.Runs, 1)
	assert.Equal(t, "North Route", shift.Runs[0].Name)
	require.Len(t, shift.Roles, 1)
	assert.Equal(t, "Food Handler", shift.Roles[0].Qualification)

	require.Len(t, file.Residents, 1)
	assert.Equal(t, "2026-01-12", file.Residents[0].AdmissionDate)
	require.Len(t, file.Residents[0].Availability, 1)
	assert.Equal(t, "monday", file.Residents[0].Availability[0].Day)
	require.Len(t, file.Residents[0].Appointments, 1)
	assert.Equal(t, "therapy", file.Residents[0].Appointments[0].Type)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=FR", file.Residents[0].Appointments[0].RecurrenceRule)

	require.Len(t, file.WorkLimits, 1)
	assert.Equal(t, "weekly_days", file.WorkLimits[0].Type)
	assert.Equal(t, 3, file.WorkLimits[0].MaxValue)
}

func TestLoadSeedFile_MissingFile(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	day, err := parseWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, day)

	_, err = parseWeekday("someday")
	assert.Error(t, err)
}
