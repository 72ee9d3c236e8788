package handler

import (
	"net/http"
	"strconv"

	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/response"

	"github.com/google/uuid"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetRecentAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	var userID *uuid.UUID
	if raw := query.Get("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
			return
		}
		userID = &parsed
	}

	auditLogs, err := h.auditLogUsecase.GetRecentAuditLogs(r.Context(), limit, userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
