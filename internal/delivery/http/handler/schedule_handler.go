package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/service"
	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/response"
	"work-program-scheduler/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	periodUsecase     usecase.SchedulePeriodUsecase
	generationUsecase usecase.ScheduleGenerationUsecase
	validator         *validator.CustomValidator
}

func NewScheduleHandler(
	periodUsecase usecase.SchedulePeriodUsecase,
	generationUsecase usecase.ScheduleGenerationUsecase,
	validator *validator.CustomValidator,
) *ScheduleHandler {
	return &ScheduleHandler{
		periodUsecase:     periodUsecase,
		generationUsecase: generationUsecase,
		validator:         validator,
	}
}

func (h *ScheduleHandler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	period, err := h.periodUsecase.CreatePeriod(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		default:
			response.InternalServerError(w, "Failed to create period")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Period created successfully", period)
}

func (h *ScheduleHandler) GetAllPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodUsecase.GetAllPeriods(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get periods")
		return
	}

	response.Success(w, http.StatusOK, "Periods retrieved successfully", periods)
}

func (h *ScheduleHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	periodID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	period, err := h.periodUsecase.GetPeriod(r.Context(), periodID)
	if err != nil {
		if err == usecase.ErrPeriodNotFound {
			response.NotFound(w, "Period not found")
			return
		}
		response.InternalServerError(w, "Failed to get period")
		return
	}

	response.Success(w, http.StatusOK, "Period retrieved successfully", period)
}

func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	periodID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	// The body is optional; an empty one runs the full period.
	var req dto.GenerateScheduleRequest
	json.NewDecoder(r.Body).Decode(&req)

	result, err := h.generationUsecase.GenerateSchedule(r.Context(), periodID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPeriodNotFound:
			response.NotFound(w, "Period not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		case usecase.ErrRangeOutsidePeriod:
			response.Error(w, http.StatusBadRequest, "Date range falls outside the period", nil)
		case service.ErrGenerationInProgress:
			response.Error(w, http.StatusConflict, "Schedule generation already in progress for this period", nil)
		default:
			response.InternalServerError(w, "Failed to generate schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule generated successfully", result)
}

func (h *ScheduleHandler) GetPeriodConflicts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	periodID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	conflicts, err := h.periodUsecase.GetPeriodConflicts(r.Context(), periodID)
	if err != nil {
		if err == usecase.ErrPeriodNotFound {
			response.NotFound(w, "Period not found")
			return
		}
		response.InternalServerError(w, "Failed to get conflicts")
		return
	}

	response.Success(w, http.StatusOK, "Conflicts retrieved successfully", conflicts)
}

func (h *ScheduleHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	periodID, _ := strconv.Atoi(query.Get("period_id"))
	departmentID, _ := strconv.Atoi(query.Get("department_id"))

	filter := &entity.AssignmentFilter{
		PeriodID:     periodID,
		ResidentID:   query.Get("resident_id"),
		DepartmentID: departmentID,
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
	}

	assignments, err := h.periodUsecase.GetAssignments(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}
