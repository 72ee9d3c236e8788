package converter

import (
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
)

// PeriodToResponse converts a SchedulePeriod entity to PeriodResponse
// DTO, including assignments when loaded.
func PeriodToResponse(period *entity.SchedulePeriod) *dto.PeriodResponse {
	if period == nil {
		return nil
	}

	response := &dto.PeriodResponse{
		ID:        period.ID,
		Name:      period.Name,
		StartDate: period.StartDate.Format("2006-01-02"),
		EndDate:   period.EndDate.Format("2006-01-02"),
		Status:    string(period.Status),
		CreatedAt: period.CreatedAt,
		UpdatedAt: period.UpdatedAt,
	}

	if len(period.Assignments) > 0 {
		response.Assignments = AssignmentsToResponses(period.Assignments)
	}

	return response
}

// PeriodsToResponses converts a slice of SchedulePeriod entities to PeriodResponse DTOs
func PeriodsToResponses(periods []entity.SchedulePeriod) []dto.PeriodResponse {
	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = *PeriodToResponse(&periods[i])
	}
	return responses
}

// AssignmentToResponse converts a ShiftAssignment entity to
// AssignmentResponse DTO. Shift and resident names are included when
// the relations are loaded.
func AssignmentToResponse(assignment *entity.ShiftAssignment) *dto.AssignmentResponse {
	if assignment == nil {
		return nil
	}

	response := &dto.AssignmentResponse{
		ID:         assignment.ID,
		PeriodID:   assignment.PeriodID,
		ShiftID:    assignment.ShiftID,
		ResidentID: assignment.ResidentID,
		Date:       assignment.Date.Format("2006-01-02"),
		RoleTitle:  assignment.RoleTitle,
		Status:     string(assignment.Status),
		CreatedAt:  assignment.CreatedAt,
	}

	if assignment.Shift.ID != 0 {
		response.ShiftName = assignment.Shift.Name
		response.Department = assignment.Shift.Department.Name
	}
	if assignment.Resident.FirstName != "" || assignment.Resident.LastName != "" {
		response.ResidentName = assignment.Resident.FullName()
	}

	return response
}

// AssignmentsToResponses converts a slice of ShiftAssignment entities to AssignmentResponse DTOs
func AssignmentsToResponses(assignments []entity.ShiftAssignment) []dto.AssignmentResponse {
	responses := make([]dto.AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *AssignmentToResponse(&assignments[i])
	}
	return responses
}

// ConflictToResponse converts a ScheduleConflict entity to ConflictResponse DTO
func ConflictToResponse(conflict *entity.ScheduleConflict) *dto.ConflictResponse {
	if conflict == nil {
		return nil
	}

	response := &dto.ConflictResponse{
		ID:          conflict.ID,
		Date:        conflict.Date.Format("2006-01-02"),
		ShiftID:     conflict.ShiftID,
		RoleTitle:   conflict.RoleTitle,
		Type:        string(conflict.Type),
		Severity:    string(conflict.Severity),
		Description: conflict.Description,
	}

	if conflict.Shift.ID != 0 {
		response.ShiftName = conflict.Shift.Name
	}

	return response
}

// ConflictsToResponses converts a slice of ScheduleConflict entities to ConflictResponse DTOs
func ConflictsToResponses(conflicts []entity.ScheduleConflict) []dto.ConflictResponse {
	responses := make([]dto.ConflictResponse, len(conflicts))
	for i := range conflicts {
		responses[i] = *ConflictToResponse(&conflicts[i])
	}
	return responses
}
