package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"work-program-scheduler/internal/domain/entity"
)

// RunStats summarizes one generation run.
type RunStats struct {
	AssignmentsCreated int             `json:"assignments_created"`
	ConflictsFound     int             `json:"conflicts_found"`
	DatesProcessed     int             `json:"dates_processed"`
	ScheduledHours     decimal.Decimal `json:"scheduled_hours"`
}

// Result carries everything one generation run produced. Nothing is
// persisted here; the caller owns storage.
type Result struct {
	Assignments []entity.ShiftAssignment
	Conflicts   []entity.ScheduleConflict
	Stats       RunStats
}

// Engine walks a date range and fills every role of every shift that
// runs on each date. It is single-threaded and deterministic: the same
// catalog and date range always produce the same result. Callers must
// serialize concurrent runs over the same period themselves.
type Engine struct {
	catalog *Catalog
	eval    *Evaluator
	tracker *Tracker
	log     *logrus.Logger
}

// NewEngine builds an engine over a loaded catalog. Delivery runs are
// parsed once here, per shift.
func NewEngine(catalog *Catalog, log *logrus.Logger) *Engine {
	runs := make(map[int][]DeliveryRun)
	for i := range catalog.Shifts {
		s := &catalog.Shifts[i]
		if s.IsDelivery() && s.DeliveryRuns != "" {
			runs[s.ID] = ParseDeliveryRuns(s.DeliveryRuns, log)
		}
	}
	return &Engine{
		catalog: catalog,
		eval:    NewEvaluator(NewLimitResolver(catalog.Limits), runs, log),
		tracker: NewTracker(),
		log:     log,
	}
}

// Evaluator returns the engine's rule evaluator, sharing its tracking
// state.
func (e *Engine) Evaluator() *Evaluator {
	return e.eval
}

// Tracker returns the engine's in-run tracking state.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// Run generates assignments and conflicts for every date from start to
// end inclusive.
func (e *Engine) Run(start, end time.Time) *Result {
	result := &Result{Stats: RunStats{ScheduledHours: decimal.Zero}}

	for date := Day(start); !date.After(Day(end)); date = date.AddDate(0, 0, 1) {
		weekday := date.Weekday()
		for i := range e.catalog.Shifts {
			shift := &e.catalog.Shifts[i]
			if !shift.RunsOn(weekday) {
				continue
			}
			if shift.IsDelivery() {
				e.assignDeliveryTeam(shift, date, result)
				continue
			}
			for ri := range shift.Roles {
				role := &shift.Roles[ri]
				for slot := 0; slot < role.RequiredCount; slot++ {
					e.assignRole(shift, role, date, slot, result)
				}
			}
		}
		result.Stats.DatesProcessed++
	}

	result.Stats.AssignmentsCreated = len(result.Assignments)
	result.Stats.ConflictsFound = len(result.Conflicts)
	return result
}

// assignRole fills one slot of one role, or records a conflict when no
// resident qualifies. The slot index only feeds diagnostics.
func (e *Engine) assignRole(shift *entity.Shift, role *entity.Role, date time.Time, slot int, result *Result) {
	eligible := e.eligibleResidents(shift, role, date, nil)
	if len(eligible) == 0 {
		result.Conflicts = append(result.Conflicts, e.roleConflict(shift, role, date, slot))
		return
	}
	picked := pickLeastLoaded(eligible, e.tracker)
	e.tracker.Assign(picked.ID, date)
	result.Assignments = append(result.Assignments, e.newAssignment(shift, role, picked, date))
	result.Stats.ScheduledHours = result.Stats.ScheduledHours.Add(shift.DurationHours())
}

// assignDeliveryTeam fills every slot of a delivery shift as one atomic
// team. Residents already picked for the team are excluded from later
// slots. The first unfillable slot rolls the whole team back and emits
// a single high-severity conflict.
func (e *Engine) assignDeliveryTeam(shift *entity.Shift, date time.Time, result *Result) {
	journal := e.tracker.BeginJournal()
	team := make(map[uuid.UUID]struct{})
	var pending []entity.ShiftAssignment

	for ri := range shift.Roles {
		role := &shift.Roles[ri]
		for slot := 0; slot < role.RequiredCount; slot++ {
			eligible := e.eligibleResidents(shift, role, date, team)
			if len(eligible) == 0 {
				journal.Rollback()
				result.Conflicts = append(result.Conflicts, e.teamConflict(shift, role, date, slot))
				return
			}
			picked := pickLeastLoaded(eligible, e.tracker)
			journal.Assign(picked.ID, date)
			team[picked.ID] = struct{}{}
			pending = append(pending, e.newAssignment(shift, role, picked, date))
		}
	}

	result.Assignments = append(result.Assignments, pending...)
	members := decimal.NewFromInt(int64(len(pending)))
	result.Stats.ScheduledHours = result.Stats.ScheduledHours.Add(shift.DurationHours().Mul(members))
}

// eligibleResidents returns, in catalog order, every resident passing
// the eligibility rules. Residents in exclude are skipped outright.
func (e *Engine) eligibleResidents(shift *entity.Shift, role *entity.Role, date time.Time, exclude map[uuid.UUID]struct{}) []*entity.Resident {
	var out []*entity.Resident
	for i := range e.catalog.Residents {
		r := &e.catalog.Residents[i]
		if exclude != nil {
			if _, taken := exclude[r.ID]; taken {
				continue
			}
		}
		if e.eval.IsEligible(r, shift, role, date, e.tracker) {
			out = append(out, r)
		}
	}
	return out
}

// pickLeastLoaded returns the candidate with the fewest assigned days.
// The scan replaces the leader only on a strictly smaller count, so
// ties keep the input order.
func pickLeastLoaded(candidates []*entity.Resident, tracker *Tracker) *entity.Resident {
	best := candidates[0]
	bestCount := tracker.DayCount(best.ID)
	for _, r := range candidates[1:] {
		if c := tracker.DayCount(r.ID); c < bestCount {
			best = r
			bestCount = c
		}
	}
	return best
}

func (e *Engine) newAssignment(shift *entity.Shift, role *entity.Role, r *entity.Resident, date time.Time) entity.ShiftAssignment {
	return entity.ShiftAssignment{
		PeriodID:   e.catalog.Period.ID,
		ShiftID:    shift.ID,
		ResidentID: r.ID,
		Date:       date,
		RoleTitle:  role.Title,
		Status:     entity.AssignmentStatusScheduled,
	}
}

func (e *Engine) roleConflict(shift *entity.Shift, role *entity.Role, date time.Time, slot int) entity.ScheduleConflict {
	return entity.ScheduleConflict{
		Date:      date,
		ShiftID:   shift.ID,
		RoleTitle: role.Title,
		Type:      entity.ConflictNoEligibleResidents,
		Severity:  entity.ConflictSeverityWarning,
		Description: fmt.Sprintf("no eligible residents for role %q (slot %d of %d) on shift %q in %s on %s",
			role.Title, slot+1, role.RequiredCount, shift.Name, shift.Department.Name, DateKey(date)),
	}
}

func (e *Engine) teamConflict(shift *entity.Shift, role *entity.Role, date time.Time, slot int) entity.ScheduleConflict {
	return entity.ScheduleConflict{
		Date:      date,
		ShiftID:   shift.ID,
		RoleTitle: role.Title,
		Type:      entity.ConflictIncompleteDeliveryTeam,
		Severity:  entity.ConflictSeverityHigh,
		Description: fmt.Sprintf("delivery team for shift %q in %s could not be completed on %s: no eligible resident for role %q (slot %d of %d); partial picks were rolled back",
			shift.Name, shift.Department.Name, DateKey(date), role.Title, slot+1, role.RequiredCount),
	}
}
