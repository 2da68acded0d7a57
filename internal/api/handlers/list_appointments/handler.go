package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
)

const (
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
	msgInvalidStatus           = "некорректный статус записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: resourceId, date (YYYY-MM-DD), status, includeCancelled (все опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{}

	if resourceID := query.Get("resourceId"); resourceID != "" {
		req.ResourceID = &resourceID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if include := query.Get("includeCancelled"); include != "" {
		value, err := strconv.ParseBool(include)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
			return
		}
		req.IncludeCancelled = value
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
