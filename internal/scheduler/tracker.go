package scheduler

import (
	"time"

	"github.com/google/uuid"
)

// Tracker holds the in-run assignment state the eligibility rules and
// load balancing read: which residents already work on each date, and
// how many distinct dates each resident has been given so far.
type Tracker struct {
	days  map[uuid.UUID]map[string]struct{}
	usage map[string]map[uuid.UUID]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		days:  make(map[uuid.UUID]map[string]struct{}),
		usage: make(map[string]map[uuid.UUID]struct{}),
	}
}

// Assign records the resident as working on the given date.
func (t *Tracker) Assign(residentID uuid.UUID, date time.Time) {
	key := DateKey(date)
	if t.days[residentID] == nil {
		t.days[residentID] = make(map[string]struct{})
	}
	t.days[residentID][key] = struct{}{}
	if t.usage[key] == nil {
		t.usage[key] = make(map[uuid.UUID]struct{})
	}
	t.usage[key][residentID] = struct{}{}
}

func (t *Tracker) unassign(residentID uuid.UUID, date time.Time) {
	key := DateKey(date)
	delete(t.days[residentID], key)
	delete(t.usage[key], residentID)
}

// UsedOn checks whether the resident already works on the date.
func (t *Tracker) UsedOn(date time.Time, residentID uuid.UUID) bool {
	_, ok := t.usage[DateKey(date)][residentID]
	return ok
}

// DayCount returns the number of distinct dates assigned to the
// resident so far in this run.
func (t *Tracker) DayCount(residentID uuid.UUID) int {
	return len(t.days[residentID])
}

type journalEntry struct {
	residentID uuid.UUID
	date       time.Time
}

// Journal applies tracker mutations while remembering them, so a
// partially formed delivery team can be undone in reverse order.
type Journal struct {
	tracker *Tracker
	entries []journalEntry
}

// BeginJournal starts an empty journal over the tracker.
func (t *Tracker) BeginJournal() *Journal {
	return &Journal{tracker: t}
}

// Assign applies one assignment to the tracker and records it.
func (j *Journal) Assign(residentID uuid.UUID, date time.Time) {
	j.tracker.Assign(residentID, date)
	j.entries = append(j.entries, journalEntry{residentID: residentID, date: date})
}

// Rollback undoes the journal's assignments, most recent first.
func (j *Journal) Rollback() {
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		j.tracker.unassign(e.residentID, e.date)
	}
	j.entries = nil
}
