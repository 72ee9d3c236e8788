package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus represents the status of a shift assignment
type AssignmentStatus string

const (
	AssignmentStatusScheduled AssignmentStatus = "scheduled"
	AssignmentStatusApproved  AssignmentStatus = "approved"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// ShiftAssignment represents one resident filling one role of one shift
// on one date. The table intentionally carries no uniqueness constraint
// across shift, date and role: assignments are additive facts and a
// regeneration clears the period before writing new rows.
type ShiftAssignment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PeriodID   int              `gorm:"not null;index" json:"period_id"`
	ShiftID    int              `gorm:"not null;index" json:"shift_id"`
	ResidentID uuid.UUID        `gorm:"type:uuid;not null;index" json:"resident_id"`
	Date       time.Time        `gorm:"type:date;not null;index" json:"date"`
	RoleTitle  string           `gorm:"type:varchar(100);not null" json:"role_title"`
	Status     AssignmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Shift    Shift    `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
	Resident Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}

func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}

// IsScheduled checks if the assignment is still in the scheduled state
func (a *ShiftAssignment) IsScheduled() bool {
	return a.Status == AssignmentStatusScheduled
}

// IsApproved checks if the assignment has been approved
func (a *ShiftAssignment) IsApproved() bool {
	return a.Status == AssignmentStatusApproved
}

// Cancel changes the assignment status to cancelled
func (a *ShiftAssignment) Cancel() {
	a.Status = AssignmentStatusCancelled
}
