package list_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments"
	"github.com/m04kA/SMC-SalonAdmin/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
)

type stubService struct {
	got *models.ListAppointmentsRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_ParsesQuery(t *testing.T) {
	svc := &stubService{}
	w := serve(svc, "/api/v1/appointments?resourceId=m1&date=2026-10-05&status=PENDING&includeCancelled=true")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got.ResourceID)
	assert.Equal(t, "m1", *svc.got.ResourceID)
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), *svc.got.Date)
	assert.Equal(t, "PENDING", *svc.got.Status)
	assert.True(t, svc.got.IncludeCancelled)
	assert.JSONEq(t, `{"appointments":[]}`, w.Body.String())
}

func TestHandler_NoFilters(t *testing.T) {
	svc := &stubService{}
	require.Equal(t, http.StatusOK, serve(svc, "/api/v1/appointments").Code)
	assert.Nil(t, svc.got.ResourceID)
	assert.Nil(t, svc.got.Date)
	assert.False(t, svc.got.IncludeCancelled)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/appointments?date=05.10.2026").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/appointments?includeCancelled=maybe").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: appointments.ErrInvalidInput}, "/api/v1/appointments?status=X").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: errors.New("boom")}, "/api/v1/appointments").Code)
}
