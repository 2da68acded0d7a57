package get_price_heatmap

import (
	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/demand"
	getPriceHeatmap "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_price_heatmap"
)

// HeatmapResponse HTTP response model
type HeatmapResponse struct {
	ServiceID  string          `json:"serviceId"`
	ResourceID *string         `json:"resourceId,omitempty"`
	BasePrice  float64         `json:"basePrice"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Weeks      int             `json:"weeks"`
	Cells      []CellResponse  `json:"cells"`
	Summary    SummaryResponse `json:"summary"`
}

// CellResponse ячейка день x час
type CellResponse struct {
	Weekday        string `json:"weekday"` // "Monday" ... "Sunday"
	Hour           int    `json:"hour"`
	Load           int    `json:"load"`
	Bookings       int    `json:"bookings"`
	Observed       bool   `json:"observed"`
	SuggestedPrice int    `json:"suggestedPrice"`
	Confidence     string `json:"confidence"`
}

// SummaryResponse сводка по карте
type SummaryResponse struct {
	MeanLoad   float64      `json:"meanLoad"`
	MedianLoad float64      `json:"medianLoad"`
	P90Load    float64      `json:"p90Load"`
	Peak       CellResponse `json:"peak"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPriceHeatmap.Response) *HeatmapResponse {
	cells := make([]CellResponse, 0, len(resp.Heatmap.Cells))
	for _, c := range resp.Heatmap.Cells {
		cells = append(cells, fromCell(c))
	}

	return &HeatmapResponse{
		ServiceID:  resp.ServiceID,
		ResourceID: resp.ResourceID,
		BasePrice:  resp.BasePrice,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Weeks:      resp.Weeks,
		Cells:      cells,
		Summary: SummaryResponse{
			MeanLoad:   resp.Heatmap.Summary.MeanLoad,
			MedianLoad: resp.Heatmap.Summary.MedianLoad,
			P90Load:    resp.Heatmap.Summary.P90Load,
			Peak:       fromCell(resp.Heatmap.Summary.Peak),
		},
	}
}

func fromCell(c demand.Cell) CellResponse {
	return CellResponse{
		Weekday:        c.Weekday.String(),
		Hour:           c.Hour,
		Load:           c.Load,
		Bookings:       c.Bookings,
		Observed:       c.Observed,
		SuggestedPrice: c.SuggestedPrice,
		Confidence:     string(c.Confidence),
	}
}
