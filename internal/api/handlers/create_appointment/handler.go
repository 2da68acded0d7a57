package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonAdmin/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPastAppointment    = "нельзя создать запись в прошлом"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondValidationError(w, err) {
			h.logger.Warn("POST /appointments - Rejected: resource_id=%s, error=%v", req.ResourceID, err)
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrPastAppointment):
			h.logger.Warn("POST /appointments - Start in the past: resource_id=%s, start=%s", req.ResourceID, req.Start)
			handlers.RespondUnprocessable(w, msgPastAppointment)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: resource_id=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, resource_id=%s", result.ID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
