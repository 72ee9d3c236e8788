package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/response"
	"work-program-scheduler/pkg/validator"

	"github.com/gorilla/mux"
)

type WorkLimitHandler struct {
	workLimitUsecase usecase.WorkLimitUsecase
	validator        *validator.CustomValidator
}

func NewWorkLimitHandler(workLimitUsecase usecase.WorkLimitUsecase, validator *validator.CustomValidator) *WorkLimitHandler {
	return &WorkLimitHandler{
		workLimitUsecase: workLimitUsecase,
		validator:        validator,
	}
}

func (h *WorkLimitHandler) CreateWorkLimit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	limit, err := h.workLimitUsecase.CreateWorkLimit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidLimitType:
			response.Error(w, http.StatusBadRequest, "Invalid limit type", nil)
		case usecase.ErrInvalidResidentID:
			response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		default:
			response.InternalServerError(w, "Failed to create work limit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Work limit created successfully", limit)
}

func (h *WorkLimitHandler) GetAllWorkLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.workLimitUsecase.GetAllWorkLimits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get work limits")
		return
	}

	response.Success(w, http.StatusOK, "Work limits retrieved successfully", limits)
}

func (h *WorkLimitHandler) DeleteWorkLimit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	limitID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid work limit ID", nil)
		return
	}

	if err := h.workLimitUsecase.DeleteWorkLimit(r.Context(), limitID); err != nil {
		if err == usecase.ErrWorkLimitNotFound {
			response.NotFound(w, "Work limit not found")
			return
		}
		response.InternalServerError(w, "Failed to delete work limit")
		return
	}

	response.Success(w, http.StatusOK, "Work limit deleted successfully", nil)
}

func (h *WorkLimitHandler) ValidateWorkLimit(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateWorkLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.workLimitUsecase.ValidateWorkLimit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidLimitType:
			response.Error(w, http.StatusBadRequest, "Invalid limit type", nil)
		case usecase.ErrInvalidResidentID:
			response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		default:
			response.InternalServerError(w, "Failed to validate work limit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Work limit validated successfully", result)
}
