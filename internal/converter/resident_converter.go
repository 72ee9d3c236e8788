package converter

import (
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
)

// ResidentToResponse converts a Resident entity to ResidentResponse DTO.
// Qualification grants and availability windows are included when loaded.
func ResidentToResponse(resident *entity.Resident) *dto.ResidentResponse {
	if resident == nil {
		return nil
	}

	response := &dto.ResidentResponse{
		ID:            resident.ID,
		FirstName:     resident.FirstName,
		LastName:      resident.LastName,
		FullName:      resident.FullName(),
		AdmissionDate: resident.AdmissionDate.Format("2006-01-02"),
		IsActive:      resident.IsActive,
		CreatedAt:     resident.CreatedAt,
		UpdatedAt:     resident.UpdatedAt,
	}

	for i := range resident.Qualifications {
		grant := &resident.Qualifications[i]
		response.Qualifications = append(response.Qualifications, dto.ResidentQualificationResponse{
			QualificationID: grant.QualificationID,
			Name:            grant.Qualification.Name,
			Category:        grant.Qualification.Category,
			EarnedOn:        grant.EarnedOn.Format("2006-01-02"),
			IsActive:        grant.IsActive,
		})
	}

	for i := range resident.Availability {
		window := &resident.Availability[i]
		response.Availability = append(response.Availability, dto.AvailabilityWindowResponse{
			DayOfWeek: window.DayOfWeek,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		})
	}

	return response
}

// ResidentsToResponses converts a slice of Resident entities to ResidentResponse DTOs
func ResidentsToResponses(residents []entity.Resident) []dto.ResidentResponse {
	responses := make([]dto.ResidentResponse, len(residents))
	for i := range residents {
		responses[i] = *ResidentToResponse(&residents[i])
	}
	return responses
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		ResidentID:     appointment.ResidentID,
		StartAt:        appointment.StartAt,
		EndAt:          appointment.EndAt,
		Type:           string(appointment.Type),
		RecurrenceRule: appointment.RecurrenceRule,
		CreatedAt:      appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
