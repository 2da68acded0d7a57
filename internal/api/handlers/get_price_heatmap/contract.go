package get_price_heatmap

import (
	"context"

	getPriceHeatmap "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_price_heatmap"
)

type GetPriceHeatmapUseCase interface {
	Execute(ctx context.Context, req *getPriceHeatmap.Request) (*getPriceHeatmap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
