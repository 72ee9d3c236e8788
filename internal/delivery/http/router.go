package http

import (
	"net/http"

	"work-program-scheduler/internal/delivery/http/handler"
	"work-program-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	residentHandler  *handler.ResidentHandler
	catalogHandler   *handler.CatalogHandler
	workLimitHandler *handler.WorkLimitHandler
	scheduleHandler  *handler.ScheduleHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	residentHandler *handler.ResidentHandler,
	catalogHandler *handler.CatalogHandler,
	workLimitHandler *handler.WorkLimitHandler,
	scheduleHandler *handler.ScheduleHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		residentHandler:  residentHandler,
		catalogHandler:   catalogHandler,
		workLimitHandler: workLimitHandler,
		scheduleHandler:  scheduleHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Read routes (any authenticated staff)
	staff := api.NewRoute().Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	staff.HandleFunc("/residents", r.residentHandler.GetAllResidents).Methods(http.MethodGet)
	staff.HandleFunc("/residents/{id}", r.residentHandler.GetResident).Methods(http.MethodGet)
	staff.HandleFunc("/residents/{id}/appointments", r.residentHandler.GetResidentAppointments).Methods(http.MethodGet)

	staff.HandleFunc("/departments", r.catalogHandler.GetAllDepartments).Methods(http.MethodGet)
	staff.HandleFunc("/qualifications", r.catalogHandler.GetAllQualifications).Methods(http.MethodGet)
	staff.HandleFunc("/shifts", r.catalogHandler.GetAllShifts).Methods(http.MethodGet)
	staff.HandleFunc("/shifts/{id}", r.catalogHandler.GetShift).Methods(http.MethodGet)

	staff.HandleFunc("/periods", r.scheduleHandler.GetAllPeriods).Methods(http.MethodGet)
	staff.HandleFunc("/periods/{id}", r.scheduleHandler.GetPeriod).Methods(http.MethodGet)
	staff.HandleFunc("/periods/{id}/conflicts", r.scheduleHandler.GetPeriodConflicts).Methods(http.MethodGet)
	staff.HandleFunc("/assignments", r.scheduleHandler.GetAssignments).Methods(http.MethodGet)

	staff.HandleFunc("/work-limits", r.workLimitHandler.GetAllWorkLimits).Methods(http.MethodGet)
	staff.HandleFunc("/work-limits/validate", r.workLimitHandler.ValidateWorkLimit).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Resident management (admin)
	admin.HandleFunc("/residents", r.residentHandler.CreateResident).Methods(http.MethodPost)
	admin.HandleFunc("/residents/{id}", r.residentHandler.DeactivateResident).Methods(http.MethodDelete)
	admin.HandleFunc("/residents/{id}/qualifications", r.residentHandler.GrantQualification).Methods(http.MethodPost)
	admin.HandleFunc("/residents/{id}/qualifications/{qualificationId}", r.residentHandler.RevokeQualification).Methods(http.MethodDelete)
	admin.HandleFunc("/residents/{id}/availability", r.residentHandler.ReplaceAvailability).Methods(http.MethodPut)
	admin.HandleFunc("/residents/{id}/appointments", r.residentHandler.CreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/residents/{id}/appointments/{appointmentId}", r.residentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Work limit management (admin)
	admin.HandleFunc("/work-limits", r.workLimitHandler.CreateWorkLimit).Methods(http.MethodPost)
	admin.HandleFunc("/work-limits/{id}", r.workLimitHandler.DeleteWorkLimit).Methods(http.MethodDelete)

	// Schedule management (admin)
	admin.HandleFunc("/periods", r.scheduleHandler.CreatePeriod).Methods(http.MethodPost)
	admin.HandleFunc("/periods/{id}/generate", r.scheduleHandler.GenerateSchedule).Methods(http.MethodPost)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
