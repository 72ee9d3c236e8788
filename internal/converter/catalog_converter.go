package converter

import (
	"encoding/json"

	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:       department.ID,
		Name:     department.Name,
		Priority: department.Priority,
	}
}

// DepartmentsToResponses converts a slice of Department entities to DepartmentResponse DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}

// QualificationToResponse converts a Qualification entity to QualificationResponse DTO
func QualificationToResponse(qualification *entity.Qualification) *dto.QualificationResponse {
	if qualification == nil {
		return nil
	}

	return &dto.QualificationResponse{
		ID:       qualification.ID,
		Name:     qualification.Name,
		Category: qualification.Category,
	}
}

// QualificationsToResponses converts a slice of Qualification entities to QualificationResponse DTOs
func QualificationsToResponses(qualifications []entity.Qualification) []dto.QualificationResponse {
	responses := make([]dto.QualificationResponse, len(qualifications))
	for i := range qualifications {
		responses[i] = *QualificationToResponse(&qualifications[i])
	}
	return responses
}

// ShiftToResponse converts a Shift entity to ShiftResponse DTO.
// Weekday flags become a day-name list and the raw delivery runs
// payload is decoded; a malformed payload just omits the runs.
func ShiftToResponse(shift *entity.Shift) *dto.ShiftResponse {
	if shift == nil {
		return nil
	}

	response := &dto.ShiftResponse{
		ID:                     shift.ID,
		DepartmentID:           shift.DepartmentID,
		Department:             shift.Department.Name,
		Name:                   shift.Name,
		StartTime:              shift.StartTime,
		EndTime:                shift.EndTime,
		Days:                   shiftDays(shift),
		MinTenureMonths:        shift.MinTenureMonths,
		AppointmentPolicy:      string(shift.AppointmentPolicy),
		BlockedAppointmentType: string(shift.BlockedAppointmentType),
		IsDelivery:             shift.IsDelivery(),
		IsActive:               shift.IsActive,
		CreatedAt:              shift.CreatedAt,
		UpdatedAt:              shift.UpdatedAt,
	}

	if shift.DeliveryRuns != "" {
		var runs []dto.RunResponse
		if err := json.Unmarshal([]byte(shift.DeliveryRuns), &runs); err == nil {
			response.Runs = runs
		}
	}

	for i := range shift.Roles {
		role := &shift.Roles[i]
		roleResponse := dto.RoleResponse{
			ID:              role.ID,
			Title:           role.Title,
			QualificationID: role.QualificationID,
			RequiredCount:   role.RequiredCount,
			Position:        role.Position,
		}
		if role.Qualification != nil {
			roleResponse.Qualification = role.Qualification.Name
		}
		response.Roles = append(response.Roles, roleResponse)
	}

	return response
}

// ShiftsToResponses converts a slice of Shift entities to ShiftResponse DTOs
func ShiftsToResponses(shifts []entity.Shift) []dto.ShiftResponse {
	responses := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *ShiftToResponse(&shifts[i])
	}
	return responses
}

func shiftDays(shift *entity.Shift) []string {
	var days []string
	if shift.Monday {
		days = append(days, "monday")
	}
	if shift.Tuesday {
		days = append(days, "tuesday")
	}
	if shift.Wednesday {
		days = append(days, "wednesday")
	}
	if shift.Thursday {
		days = append(days, "thursday")
	}
	if shift.Friday {
		days = append(days, "friday")
	}
	if shift.Saturday {
		days = append(days, "saturday")
	}
	if shift.Sunday {
		days = append(days, "sunday")
	}
	return days
}
