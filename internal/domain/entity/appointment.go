package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType represents the kind of personal appointment
type AppointmentType string

const (
	AppointmentTypeMedical AppointmentType = "medical"
	AppointmentTypeLegal   AppointmentType = "legal"
	AppointmentTypeTherapy AppointmentType = "therapy"
	AppointmentTypeFamily  AppointmentType = "family"
	AppointmentTypeOther   AppointmentType = "other"
)

// Appointment represents a resident's personal appointment. A non-nil
// RecurrenceRule holds an RFC 5545 RRULE string; the scheduler expands
// it into concrete occurrences before a generation run.
type Appointment struct {
	ID             int             `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"resident_id"`
	StartAt        time.Time       `gorm:"not null;index" json:"start_at"`
	EndAt          time.Time       `gorm:"not null" json:"end_at"`
	Type           AppointmentType `gorm:"type:varchar(30);not null" json:"type"`
	RecurrenceRule *string         `gorm:"type:varchar(255)" json:"recurrence_rule,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsRecurring checks if the appointment carries a recurrence rule
func (a *Appointment) IsRecurring() bool {
	return a.RecurrenceRule != nil && *a.RecurrenceRule != ""
}

// OccursOn checks whether the appointment falls on the given calendar
// date. An appointment's calendar day is the day it starts.
func (a *Appointment) OccursOn(date time.Time) bool {
	sy, sm, sd := a.StartAt.Date()
	dy, dm, dd := date.Date()
	return sy == dy && sm == dm && sd == dd
}

// OverlapsWindow checks whether the appointment overlaps the given time
// window using the half-open comparison start < EndAt && end > StartAt.
func (a *Appointment) OverlapsWindow(start, end time.Time) bool {
	return start.Before(a.EndAt) && end.After(a.StartAt)
}
