package entity

import "time"

// ConflictType classifies why a slot could not be filled
type ConflictType string

const (
	ConflictNoEligibleResidents    ConflictType = "no_eligible_residents"
	ConflictIncompleteDeliveryTeam ConflictType = "incomplete_delivery_team"
)

// ConflictSeverity grades how serious a conflict is
type ConflictSeverity string

const (
	ConflictSeverityWarning ConflictSeverity = "warning"
	ConflictSeverityHigh    ConflictSeverity = "high"
)

// ScheduleConflict represents a role slot the generation engine could
// not fill on a given date. Conflicts are data, not errors: a run that
// produces conflicts still succeeds.
type ScheduleConflict struct {
	ID          int              `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        time.Time        `gorm:"type:date;not null;index" json:"date"`
	ShiftID     int              `gorm:"not null;index" json:"shift_id"`
	RoleTitle   string           `gorm:"type:varchar(100)" json:"role_title,omitempty"`
	Type        ConflictType     `gorm:"type:varchar(40);not null;index" json:"type"`
	Severity    ConflictSeverity `gorm:"type:varchar(20);not null" json:"severity"`
	Description string           `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Shift Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

func (ScheduleConflict) TableName() string {
	return "schedule_conflicts"
}
