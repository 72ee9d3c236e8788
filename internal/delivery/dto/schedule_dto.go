package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePeriodRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	StartDate string `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
}

// GenerateScheduleRequest narrows a generation run to a sub-range of the
// period. Empty dates default to the period's own bounds.
type GenerateScheduleRequest struct {
	StartDate string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
}

// Response DTOs

type PeriodResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Status      string               `json:"status"`
	Assignments []AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
	Total   int              `json:"total"`
}

type AssignmentResponse struct {
	ID           uuid.UUID `json:"id"`
	PeriodID     int       `json:"period_id"`
	ShiftID      int       `json:"shift_id"`
	ShiftName    string    `json:"shift_name,omitempty"`
	Department   string    `json:"department,omitempty"`
	ResidentID   uuid.UUID `json:"resident_id"`
	ResidentName string    `json:"resident_name,omitempty"`
	Date         string    `json:"date"`
	RoleTitle    string    `json:"role_title"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

type ConflictResponse struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	ShiftID     int    `json:"shift_id"`
	ShiftName   string `json:"shift_name,omitempty"`
	RoleTitle   string `json:"role_title,omitempty"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
	Total     int                `json:"total"`
}

// GenerationStatsResponse reports what one run produced. The counters
// reflect persisted rows, not just what the engine emitted.
type GenerationStatsResponse struct {
	AssignmentsCreated int             `json:"assignments_created"`
	ConflictsFound     int             `json:"conflicts_found"`
	DatesProcessed     int             `json:"dates_processed"`
	ScheduledHours     decimal.Decimal `json:"scheduled_hours"`
	DurationMS         int64           `json:"duration_ms"`
}

type GenerateScheduleResponse struct {
	Period PeriodResponse          `json:"period"`
	Stats  GenerationStatsResponse `json:"stats"`
}
