package entity

import (
	"time"

	"github.com/google/uuid"
)

// LimitType identifies the kind of work ceiling a WorkLimit sets
type LimitType string

const (
	LimitWeeklyDays  LimitType = "weekly_days"
	LimitDailyHours  LimitType = "daily_hours"
	LimitMonthlyDays LimitType = "monthly_days"
)

// IsValid checks whether the limit type is one of the known kinds
func (t LimitType) IsValid() bool {
	switch t {
	case LimitWeeklyDays, LimitDailyHours, LimitMonthlyDays:
		return true
	}
	return false
}

// WorkLimit represents a work ceiling. A nil ResidentID makes the row a
// global default; a concrete ResidentID overrides the global value for
// that resident.
type WorkLimit struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID *uuid.UUID `gorm:"type:uuid;index" json:"resident_id,omitempty"`
	LimitType  LimitType  `gorm:"type:varchar(20);not null;index" json:"limit_type"`
	MaxValue   int        `gorm:"not null" json:"max_value"`
	IsActive   *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkLimit) TableName() string {
	return "work_limits"
}

// IsGlobal checks if the limit applies to all residents
func (w *WorkLimit) IsGlobal() bool {
	return w.ResidentID == nil
}
