package scheduler

import (
	"time"

	"work-program-scheduler/internal/domain/entity"
)

// Catalog is the snapshot of scheduling inputs one generation run works
// from. It is loaded once per run and never reloaded mid-run. Residents
// carry their active qualification grants, availability windows and the
// concrete appointment occurrences falling inside the run's date range;
// shifts carry their departments and roles in declared order.
type Catalog struct {
	Period    *entity.SchedulePeriod
	Shifts    []entity.Shift
	Residents []entity.Resident
	Limits    []entity.WorkLimit
}

// DateKey formats a date the way tracking state and diagnostics key it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
