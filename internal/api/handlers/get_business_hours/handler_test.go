package get_business_hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
)

type stubService struct {
	got *string
	err error
}

func (s *stubService) GetBusinessHours(_ context.Context, resourceID *string) (*models.BusinessHoursResponse, error) {
	s.got = resourceID
	if s.err != nil {
		return nil, s.err
	}
	return &models.BusinessHoursResponse{ResourceID: resourceID, OpenHour: 10, CloseHour: 20, Timezone: "UTC", Level: models.LevelResource}, nil
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_ForResource(t *testing.T) {
	svc := &stubService{}
	w := serve(svc, "/api/v1/settings/business-hours?resourceId=m1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "m1", *svc.got)

	var resp models.BusinessHoursResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.OpenHour)
	assert.Equal(t, "resource", resp.Level)
}

func TestHandler_Salon(t *testing.T) {
	svc := &stubService{}
	require.Equal(t, http.StatusOK, serve(svc, "/api/v1/settings/business-hours").Code)
	assert.Nil(t, svc.got)
}

func TestHandler_Error(t *testing.T) {
	w := serve(&stubService{err: errors.New("boom")}, "/api/v1/settings/business-hours")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
