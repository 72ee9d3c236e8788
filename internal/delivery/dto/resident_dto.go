package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateResidentRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string `json:"last_name" validate:"required,min=1,max=100"`
	AdmissionDate string `json:"admission_date" validate:"required"` // Format: YYYY-MM-DD
}

type GrantQualificationRequest struct {
	QualificationID int    `json:"qualification_id" validate:"required,min=1"`
	EarnedOn        string `json:"earned_on" validate:"omitempty"` // Format: YYYY-MM-DD, defaults to today
}

type AvailabilityWindowRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"` // 0 = Sunday
	StartTime string `json:"start_time" validate:"required"`     // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`       // Format: HH:MM
}

type ReplaceAvailabilityRequest struct {
	Windows []AvailabilityWindowRequest `json:"windows" validate:"dive"`
}

type CreateAppointmentRequest struct {
	StartAt        string `json:"start_at" validate:"required"` // RFC 3339
	EndAt          string `json:"end_at" validate:"required"`   // RFC 3339
	Type           string `json:"type" validate:"required,oneof=medical legal therapy family other"`
	RecurrenceRule string `json:"recurrence_rule" validate:"omitempty"` // RFC 5545 RRULE
}

// Response DTOs

type ResidentResponse struct {
	ID             uuid.UUID                       `json:"id"`
	FirstName      string                          `json:"first_name"`
	LastName       string                          `json:"last_name"`
	FullName       string                          `json:"full_name"`
	AdmissionDate  string                          `json:"admission_date"`
	IsActive       *bool                           `json:"is_active"`
	Qualifications []ResidentQualificationResponse `json:"qualifications,omitempty"`
	Availability   []AvailabilityWindowResponse    `json:"availability,omitempty"`
	CreatedAt      time.Time                       `json:"created_at"`
	UpdatedAt      time.Time                       `json:"updated_at"`
}

type ResidentListResponse struct {
	Residents []ResidentResponse `json:"residents"`
	Total     int                `json:"total"`
}

type ResidentQualificationResponse struct {
	QualificationID int    `json:"qualification_id"`
	Name            string `json:"name,omitempty"`
	Category        string `json:"category,omitempty"`
	EarnedOn        string `json:"earned_on"`
	IsActive        *bool  `json:"is_active"`
}

type AvailabilityWindowResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AppointmentResponse struct {
	ID             int       `json:"id"`
	ResidentID     uuid.UUID `json:"resident_id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Type           string    `json:"type"`
	RecurrenceRule *string   `json:"recurrence_rule,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
