package compute_totals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	computeTotals "github.com/m04kA/SMC-SalonAdmin/internal/usecase/compute_totals"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
)

type stubUseCase struct {
	got *computeTotals.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *computeTotals.Request) (*computeTotals.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &computeTotals.Response{Plan: domain.PlanPro, TotalPrice: 2430, TotalDuration: 105, Discount: 270}, nil
}

const body = `{"baseServiceId": "haircut", "timeExtension": true, "additionalServiceIds": ["styling"]}`

func serve(uc *stubUseCase, userID, payload string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/totals", strings.NewReader(payload))
	if userID != "" {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandler_OK(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(uc, "admin-1", body)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "admin-1", uc.got.UserID)
	assert.True(t, uc.got.Selection.TimeExtension)
	assert.Equal(t, []string{"styling"}, uc.got.Selection.AdditionalServiceIDs)

	var resp TotalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2430, resp.TotalPrice)
	assert.Equal(t, "pro", resp.Plan)
}

func TestHandler_FeatureLocked(t *testing.T) {
	uc := &stubUseCase{err: &computeTotals.FeatureLockedError{Feature: domain.FeatureBundles, Plan: domain.PlanFree}}
	w := serve(uc, "admin-1", body)
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FeatureLocked:bundles", resp.Code)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		payload    string
		err        error
		wantStatus int
	}{
		{name: "no user", payload: body, wantStatus: http.StatusUnauthorized},
		{name: "bad json", userID: "u", payload: `{"baseServiceId": 1}`, wantStatus: http.StatusBadRequest},
		{name: "invalid", userID: "u", payload: body, err: fmt.Errorf("%w: x", computeTotals.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "no service", userID: "u", payload: body, err: computeTotals.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "no bundle", userID: "u", payload: body, err: computeTotals.ErrBundleNotFound, wantStatus: http.StatusNotFound},
		{name: "busy after", userID: "u", payload: body, err: computeTotals.ErrExtensionUnavailable, wantStatus: http.StatusConflict},
		{name: "internal", userID: "u", payload: body, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(&stubUseCase{err: tt.err}, tt.userID, tt.payload).Code)
		})
	}
}
