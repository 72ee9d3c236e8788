package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow represents the daily time window a resident is
// available for work. DayOfWeek follows time.Weekday numbering,
// 0 = Sunday through 6 = Saturday. At most one window per weekday;
// a weekday without a window means the resident is unrestricted that day.
type AvailabilityWindow struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_resident_weekday" json:"resident_id"`
	DayOfWeek  int       `gorm:"not null;uniqueIndex:idx_resident_weekday" json:"day_of_week"`
	StartTime  string    `gorm:"type:time;not null" json:"start_time"`
	EndTime    string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}
