package scheduler

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"work-program-scheduler/internal/domain/entity"
)

// Evaluator applies the eligibility rules to one resident, shift, role
// and date combination. IsEligible and Explain share a single rule walk
// so their answers cannot diverge: IsEligible stops at the first failed
// rule, Explain walks every rule and reports each failure.
type Evaluator struct {
	limits *LimitResolver
	runs   map[int][]DeliveryRun
	log    *logrus.Logger
}

// NewEvaluator builds an evaluator over resolved limits and the parsed
// delivery runs keyed by shift ID.
func NewEvaluator(limits *LimitResolver, runs map[int][]DeliveryRun, log *logrus.Logger) *Evaluator {
	return &Evaluator{limits: limits, runs: runs, log: log}
}

// IsEligible checks whether the resident may take the role on the date.
func (ev *Evaluator) IsEligible(r *entity.Resident, shift *entity.Shift, role *entity.Role, date time.Time, tracker *Tracker) bool {
	ok, _ := ev.evaluate(r, shift, role, date, tracker, false)
	return ok
}

// Explain runs the same rules as IsEligible and returns a
// human-readable reason for every rule the resident fails.
func (ev *Evaluator) Explain(r *entity.Resident, shift *entity.Shift, role *entity.Role, date time.Time, tracker *Tracker) (bool, []string) {
	return ev.evaluate(r, shift, role, date, tracker, true)
}

func (ev *Evaluator) evaluate(r *entity.Resident, shift *entity.Shift, role *entity.Role, date time.Time, tracker *Tracker, collect bool) (bool, []string) {
	var reasons []string

	// fail records the reason when collecting and reports whether the
	// walk should stop early.
	fail := func(format string, args ...interface{}) bool {
		if !collect {
			return true
		}
		reasons = append(reasons, fmt.Sprintf(format, args...))
		return false
	}

	if tracker.UsedOn(date, r.ID) {
		if fail("already assigned to a role on %s", DateKey(date)) {
			return false, nil
		}
	}

	limit := ev.limits.Effective(r.ID, entity.LimitWeeklyDays)
	if count := tracker.DayCount(r.ID); count >= limit {
		if fail("work-day limit reached (%d of %d days)", count, limit) {
			return false, nil
		}
	}

	if role.RequiresQualification() && !r.HasActiveQualification(*role.QualificationID) {
		if fail("missing the qualification required for role %s", role.Title) {
			return false, nil
		}
	}

	if shift.MinTenureMonths > 0 {
		if tenure := r.TenureMonths(date); tenure < float64(shift.MinTenureMonths) {
			if fail("tenure %.1f months is below the required %d", tenure, shift.MinTenureMonths) {
				return false, nil
			}
		}
	}

	if shift.IsDelivery() {
		stop, deliveryReasons := ev.evaluateDelivery(r, shift, date, collect)
		if stop {
			return false, nil
		}
		reasons = append(reasons, deliveryReasons...)
	} else {
		if w := r.AvailabilityOn(date.Weekday()); w != nil && !ev.covers(w, shift.StartTime, shift.EndTime) {
			if fail("availability %s-%s does not cover the shift window %s-%s", w.StartTime, w.EndTime, shift.StartTime, shift.EndTime) {
				return false, nil
			}
		}
		if r.HasAppointmentOn(date) {
			if fail("has an appointment on %s", DateKey(date)) {
				return false, nil
			}
		}
	}

	return len(reasons) == 0, reasons
}

// evaluateDelivery applies the stricter delivery checks: availability
// must cover the full outer window, any appointment on the date blocks
// the whole day, and appointments must not overlap any delivery run.
func (ev *Evaluator) evaluateDelivery(r *entity.Resident, shift *entity.Shift, date time.Time, collect bool) (bool, []string) {
	var reasons []string

	fail := func(format string, args ...interface{}) bool {
		if !collect {
			return true
		}
		reasons = append(reasons, fmt.Sprintf(format, args...))
		return false
	}

	if w := r.AvailabilityOn(date.Weekday()); w != nil && !ev.covers(w, shift.StartTime, shift.EndTime) {
		if fail("availability %s-%s does not cover the delivery window %s-%s", w.StartTime, w.EndTime, shift.StartTime, shift.EndTime) {
			return true, nil
		}
	}

	if r.HasAppointmentOn(date) {
		if fail("has an appointment on %s, which blocks the full delivery day", DateKey(date)) {
			return true, nil
		}
	}

	for _, run := range ev.runs[shift.ID] {
		start, end, ok := run.WindowOn(date)
		if !ok {
			continue
		}
		for i := range r.Appointments {
			if r.Appointments[i].OverlapsWindow(start, end) {
				if fail("appointment overlaps delivery run %s (%s-%s)", run.Name, run.Start, run.End) {
					return true, nil
				}
				break
			}
		}
	}

	return false, reasons
}

// covers checks that an availability window contains the given clock
// window. Clock values that fail to parse do not constrain; they are
// logged and treated as covered.
func (ev *Evaluator) covers(w *entity.AvailabilityWindow, startClock, endClock string) bool {
	availStart, err1 := entity.ClockMinutes(w.StartTime)
	availEnd, err2 := entity.ClockMinutes(w.EndTime)
	shiftStart, err3 := entity.ClockMinutes(startClock)
	shiftEnd, err4 := entity.ClockMinutes(endClock)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		ev.log.Warnf("Failed to parse clock window %s-%s against %s-%s, treating as covered", w.StartTime, w.EndTime, startClock, endClock)
		return true
	}
	return shiftStart >= availStart && shiftEnd <= availEnd
}
