package cancel_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) Cancel(_ context.Context, id string) (*models.AppointmentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentResponse{ID: id, Status: "CANCELLED"}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "not found", err: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "twice", err: appointments.ErrAlreadyCancelled, wantStatus: http.StatusConflict},
		{name: "completed", err: appointments.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/appointments/{appointmentId}/cancel",
				NewHandler(stubService{err: tt.err}, logger.NewNop()).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/appointments/a-1/cancel", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
