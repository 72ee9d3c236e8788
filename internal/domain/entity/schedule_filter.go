package entity

// AssignmentFilter is a domain-level filter for querying shift
// assignments. Used by repository layer to avoid coupling with
// delivery DTOs.
type AssignmentFilter struct {
	PeriodID     int    // 0 means any period
	ResidentID   string // UUID string, empty means any resident
	DepartmentID int    // 0 means any department
	StartDate    string // Format: YYYY-MM-DD
	EndDate      string // Format: YYYY-MM-DD
}
