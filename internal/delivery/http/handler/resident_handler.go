package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/response"
	"work-program-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ResidentHandler struct {
	residentUsecase usecase.ResidentUsecase
	validator       *validator.CustomValidator
}

func NewResidentHandler(residentUsecase usecase.ResidentUsecase, validator *validator.CustomValidator) *ResidentHandler {
	return &ResidentHandler{
		residentUsecase: residentUsecase,
		validator:       validator,
	}
}

func (h *ResidentHandler) CreateResident(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resident, err := h.residentUsecase.CreateResident(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid admission date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create resident")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Resident created successfully", resident)
}

func (h *ResidentHandler) GetAllResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := h.residentUsecase.GetAllResidents(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get residents")
		return
	}

	response.Success(w, http.StatusOK, "Residents retrieved successfully", residents)
}

func (h *ResidentHandler) GetResident(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	resident, err := h.residentUsecase.GetResident(r.Context(), residentID)
	if err != nil {
		if err == usecase.ErrResidentNotFound {
			response.NotFound(w, "Resident not found")
			return
		}
		response.InternalServerError(w, "Failed to get resident")
		return
	}

	response.Success(w, http.StatusOK, "Resident retrieved successfully", resident)
}

func (h *ResidentHandler) DeactivateResident(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	if err := h.residentUsecase.DeactivateResident(r.Context(), residentID); err != nil {
		switch err {
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		case usecase.ErrResidentAlreadyInactive:
			response.Error(w, http.StatusConflict, "Resident is already inactive", nil)
		default:
			response.InternalServerError(w, "Failed to deactivate resident")
		}
		return
	}

	response.Success(w, http.StatusOK, "Resident deactivated successfully", nil)
}

func (h *ResidentHandler) GrantQualification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	var req dto.GrantQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	grant, err := h.residentUsecase.GrantQualification(r.Context(), residentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		case usecase.ErrQualificationNotFound:
			response.NotFound(w, "Qualification not found")
		case usecase.ErrQualificationAlreadyGranted:
			response.Error(w, http.StatusConflict, "Qualification is already granted", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid earned_on date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to grant qualification")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Qualification granted successfully", grant)
}

func (h *ResidentHandler) RevokeQualification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}
	qualificationID, err := strconv.Atoi(vars["qualificationId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid qualification ID", nil)
		return
	}

	if err := h.residentUsecase.RevokeQualification(r.Context(), residentID, qualificationID); err != nil {
		switch err {
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		case usecase.ErrGrantNotFound:
			response.NotFound(w, "No active grant to revoke")
		default:
			response.InternalServerError(w, "Failed to revoke qualification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Qualification revoked successfully", nil)
}

func (h *ResidentHandler) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	var req dto.ReplaceAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	windows, err := h.residentUsecase.ReplaceAvailability(r.Context(), residentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Window end must be after its start", nil)
		case usecase.ErrDuplicateWeekday:
			response.Error(w, http.StatusBadRequest, "Only one availability window per weekday", nil)
		default:
			response.InternalServerError(w, "Failed to replace availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability replaced successfully", windows)
}

func (h *ResidentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.residentUsecase.CreateAppointment(r.Context(), residentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrResidentNotFound:
			response.NotFound(w, "Resident not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, use RFC 3339", nil)
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Appointment end must be after its start", nil)
		case usecase.ErrInvalidRecurrenceRule:
			response.Error(w, http.StatusBadRequest, "Invalid recurrence rule", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *ResidentHandler) GetResidentAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}

	appointments, err := h.residentUsecase.GetResidentAppointments(r.Context(), residentID)
	if err != nil {
		if err == usecase.ErrResidentNotFound {
			response.NotFound(w, "Resident not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *ResidentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resident ID", nil)
		return
	}
	appointmentID, err := strconv.Atoi(vars["appointmentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.residentUsecase.DeleteAppointment(r.Context(), residentID, appointmentID); err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
