package service

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"

	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/scheduler"
)

// AppointmentSeriesService expands recurring appointments into the
// concrete occurrences a generation run needs. The engine only ever
// sees concrete occurrences; recurrence is resolved here, once per run.
type AppointmentSeriesService struct {
	log *logrus.Logger
}

func NewAppointmentSeriesService(log *logrus.Logger) *AppointmentSeriesService {
	return &AppointmentSeriesService{log: log}
}

// Materialize returns the appointment occurrences overlapping the date
// range from..to inclusive. One-off appointments pass through when they
// touch the range. Recurring appointments are expanded from their RFC
// 5545 rule, each occurrence keeping the master's clock time and
// duration. A malformed rule is logged and the master kept as a single
// occurrence, so one bad row narrows scheduling instead of failing it.
func (s *AppointmentSeriesService) Materialize(appointments []entity.Appointment, from, to time.Time) []entity.Appointment {
	rangeStart := scheduler.Day(from)
	rangeEnd := scheduler.Day(to).AddDate(0, 0, 1)

	var out []entity.Appointment
	for i := range appointments {
		a := appointments[i]

		if !a.IsRecurring() {
			if a.OverlapsWindow(rangeStart, rangeEnd) {
				out = append(out, a)
			}
			continue
		}

		rule, err := rrule.StrToRRule(*a.RecurrenceRule)
		if err != nil {
			s.log.Warnf("Failed to parse recurrence rule for appointment %d, keeping single occurrence: %+v", a.ID, err)
			a.RecurrenceRule = nil
			if a.OverlapsWindow(rangeStart, rangeEnd) {
				out = append(out, a)
			}
			continue
		}

		rule.DTStart(a.StartAt)
		duration := a.EndAt.Sub(a.StartAt)

		// Search one day past each edge so an occurrence spilling into
		// the range from the evening before is not lost.
		searchStart := rangeStart.AddDate(0, 0, -1)
		searchEnd := rangeEnd.AddDate(0, 0, 1)

		for _, occurrence := range rule.Between(searchStart, searchEnd, true) {
			instance := a
			instance.StartAt = occurrence
			instance.EndAt = occurrence.Add(duration)
			instance.RecurrenceRule = nil
			if instance.OverlapsWindow(rangeStart, rangeEnd) {
				out = append(out, instance)
			}
		}
	}
	return out
}
