package compute_totals

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	computeTotals "github.com/m04kA/SMC-SalonAdmin/internal/usecase/compute_totals"
)

// ComputeTotalsRequest HTTP request model
type ComputeTotalsRequest struct {
	BaseServiceID        string     `json:"baseServiceId"`
	TimeExtension        bool       `json:"timeExtension"`
	AdditionalServiceIDs []string   `json:"additionalServiceIds,omitempty"`
	SelectedBundleID     *string    `json:"selectedBundleId,omitempty"`
	ResourceID           *string    `json:"resourceId,omitempty"`
	Start                *time.Time `json:"start,omitempty"`
	AppointmentID        *string    `json:"appointmentId,omitempty"`
}

// TotalsResponse HTTP response model
type TotalsResponse struct {
	Plan          string     `json:"plan"`
	BasePrice     int        `json:"basePrice"`
	BaseDuration  int        `json:"baseDuration"`
	TotalPrice    int        `json:"totalPrice"`
	TotalDuration int        `json:"totalDuration"`
	Discount      int        `json:"discount"`
	End           *time.Time `json:"end,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ComputeTotalsRequest) ToUseCaseRequest(userID string) *computeTotals.Request {
	return &computeTotals.Request{
		UserID:        userID,
		BaseServiceID: r.BaseServiceID,
		Selection: domain.UpsellSelection{
			TimeExtension:        r.TimeExtension,
			AdditionalServiceIDs: r.AdditionalServiceIDs,
			SelectedBundleID:     r.SelectedBundleID,
		},
		ResourceID:    r.ResourceID,
		Start:         r.Start,
		AppointmentID: r.AppointmentID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeTotals.Response) *TotalsResponse {
	return &TotalsResponse{
		Plan:          string(resp.Plan),
		BasePrice:     resp.BasePrice,
		BaseDuration:  resp.BaseDuration,
		TotalPrice:    resp.TotalPrice,
		TotalDuration: resp.TotalDuration,
		Discount:      resp.Discount,
		End:           resp.End,
	}
}
