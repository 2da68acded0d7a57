package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_StatusTransitions(t *testing.T) {
	tests := []struct {
		status       AppointmentStatus
		canConfirm   bool
		canComplete  bool
		canCancel    bool
		occupiesSlot bool
	}{
		{status: StatusPending, canConfirm: true, canComplete: false, canCancel: true, occupiesSlot: true},
		{status: StatusConfirmed, canConfirm: false, canComplete: true, canCancel: true, occupiesSlot: true},
		{status: StatusCompleted, canConfirm: false, canComplete: false, canCancel: false, occupiesSlot: true},
		{status: StatusCancelled, canConfirm: false, canComplete: false, canCancel: false, occupiesSlot: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.canConfirm, a.CanBeConfirmed())
			assert.Equal(t, tt.canComplete, a.CanBeCompleted())
			assert.Equal(t, tt.canCancel, a.CanBeCancelled())
			assert.Equal(t, tt.occupiesSlot, a.OccupiesResource())
		})
	}
}
