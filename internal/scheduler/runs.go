package scheduler

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"work-program-scheduler/internal/domain/entity"
)

// DeliveryRun is one named sub-window of a delivery shift's day.
type DeliveryRun struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseDeliveryRuns decodes a shift's raw delivery runs JSON. A
// malformed payload is logged and yields no runs, so a bad catalog row
// relaxes the run-level checks instead of failing the whole generation.
func ParseDeliveryRuns(raw string, log *logrus.Logger) []DeliveryRun {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var runs []DeliveryRun
	if err := json.Unmarshal([]byte(raw), &runs); err != nil {
		log.Warnf("Failed to parse delivery runs payload, skipping run-level checks: %+v", err)
		return nil
	}
	return runs
}

// WindowOn anchors the run's clock window to a concrete date. The third
// return is false when either clock string is malformed.
func (r DeliveryRun) WindowOn(date time.Time) (time.Time, time.Time, bool) {
	start, err := entity.ClockMinutes(r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := entity.ClockMinutes(r.End)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	day := Day(date)
	return day.Add(time.Duration(start) * time.Minute), day.Add(time.Duration(end) * time.Minute), true
}
