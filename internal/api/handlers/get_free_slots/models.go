package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	ResourceID      string         `json:"resourceId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	OpenHour        int            `json:"openHour"`
	CloseHour       int            `json:"closeHour"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse свободное окно
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(resourceID, dateStr string, duration int) (*getFreeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getFreeSlots.Request{
		ResourceID:      resourceID,
		Date:            date,
		DurationMinutes: duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Start: s.Start, End: s.End})
	}

	return &FreeSlotsResponse{
		ResourceID:      resp.ResourceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		OpenHour:        resp.OpenHour,
		CloseHour:       resp.CloseHour,
		Slots:           slots,
	}
}
