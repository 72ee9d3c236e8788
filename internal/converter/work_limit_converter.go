package converter

import (
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
)

// WorkLimitToResponse converts a WorkLimit entity to WorkLimitResponse DTO
func WorkLimitToResponse(limit *entity.WorkLimit) *dto.WorkLimitResponse {
	if limit == nil {
		return nil
	}

	response := &dto.WorkLimitResponse{
		ID:        limit.ID,
		LimitType: string(limit.LimitType),
		MaxValue:  limit.MaxValue,
		IsActive:  limit.IsActive,
		CreatedAt: limit.CreatedAt,
		UpdatedAt: limit.UpdatedAt,
	}

	if limit.ResidentID != nil {
		id := limit.ResidentID.String()
		response.ResidentID = &id
	}

	return response
}

// WorkLimitsToResponses converts a slice of WorkLimit entities to WorkLimitResponse DTOs
func WorkLimitsToResponses(limits []entity.WorkLimit) []dto.WorkLimitResponse {
	responses := make([]dto.WorkLimitResponse, len(limits))
	for i := range limits {
		responses[i] = *WorkLimitToResponse(&limits[i])
	}
	return responses
}
