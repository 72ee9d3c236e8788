package dto

import "time"

// Response DTOs. The shift catalog is managed through seed fixtures;
// the HTTP surface only reads it.

type DepartmentResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

type QualificationResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type QualificationListResponse struct {
	Qualifications []QualificationResponse `json:"qualifications"`
	Total          int                     `json:"total"`
}

type RoleResponse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	QualificationID *int   `json:"qualification_id,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	RequiredCount   int    `json:"required_count"`
	Position        int    `json:"position"`
}

type ShiftResponse struct {
	ID                     int            `json:"id"`
	DepartmentID           int            `json:"department_id"`
	Department             string         `json:"department,omitempty"`
	Name                   string         `json:"name"`
	StartTime              string         `json:"start_time"`
	EndTime                string         `json:"end_time"`
	Days                   []string       `json:"days"`
	MinTenureMonths        int            `json:"min_tenure_months"`
	AppointmentPolicy      string         `json:"appointment_policy"`
	BlockedAppointmentType string         `json:"blocked_appointment_type,omitempty"`
	IsDelivery             bool           `json:"is_delivery"`
	Runs                   []RunResponse  `json:"runs,omitempty"`
	Roles                  []RoleResponse `json:"roles,omitempty"`
	IsActive               *bool          `json:"is_active"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

type RunResponse struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}
