package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/scheduling"
)

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Title)
}

func TestRespondValidationError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantID     string
	}{
		{
			name:       "conflict",
			err:        &scheduling.ValidationError{Kind: scheduling.KindTimeConflict, ConflictingID: "a-1"},
			wantStatus: http.StatusConflict,
			wantCode:   "TimeConflict",
			wantID:     "a-1",
		},
		{
			name:       "cancelled",
			err:        &scheduling.ValidationError{Kind: scheduling.KindImmutableCancelled},
			wantStatus: http.StatusConflict,
			wantCode:   "ImmutableCancelled",
		},
		{
			name:       "range",
			err:        &scheduling.ValidationError{Kind: scheduling.KindInvalidTimeRange},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "InvalidTimeRange",
		},
		{
			name:       "hours",
			err:        &scheduling.ValidationError{Kind: scheduling.KindOutsideBusinessHours},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "OutsideBusinessHours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.True(t, RespondValidationError(w, tt.err))
			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantID, body.ConflictingID)
			assert.NotEmpty(t, body.Error)
		})
	}

	assert.False(t, RespondValidationError(httptest.NewRecorder(), errors.New("other")))
}
