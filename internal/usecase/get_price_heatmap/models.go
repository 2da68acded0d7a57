package get_price_heatmap

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/demand"
)

// Request модель запроса тепловой карты цен
type Request struct {
	UserID     string
	ServiceID  string
	ResourceID *string // nil - по всем ресурсам салона
	Weeks      int     // 0 - domain.DefaultHeatmapWeeks
}

// Response модель ответа
type Response struct {
	ServiceID  string
	ResourceID *string
	BasePrice  float64
	From       time.Time
	To         time.Time
	Weeks      int
	Heatmap    demand.Heatmap
}
