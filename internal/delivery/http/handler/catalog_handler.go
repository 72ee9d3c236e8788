package handler

import (
	"net/http"
	"strconv"

	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/response"

	"github.com/gorilla/mux"
)

// CatalogHandler exposes the seeded scheduling catalog read-only.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.catalogUsecase.GetAllDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *CatalogHandler) GetAllQualifications(w http.ResponseWriter, r *http.Request) {
	qualifications, err := h.catalogUsecase.GetAllQualifications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get qualifications")
		return
	}

	response.Success(w, http.StatusOK, "Qualifications retrieved successfully", qualifications)
}

func (h *CatalogHandler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.catalogUsecase.GetAllShifts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get shifts")
		return
	}

	response.Success(w, http.StatusOK, "Shifts retrieved successfully", shifts)
}

func (h *CatalogHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	shift, err := h.catalogUsecase.GetShift(r.Context(), shiftID)
	if err != nil {
		if err == usecase.ErrShiftNotFound {
			response.NotFound(w, "Shift not found")
			return
		}
		response.InternalServerError(w, "Failed to get shift")
		return
	}

	response.Success(w, http.StatusOK, "Shift retrieved successfully", shift)
}
