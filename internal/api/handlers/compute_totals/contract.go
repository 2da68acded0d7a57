package compute_totals

import (
	"context"

	computeTotals "github.com/m04kA/SMC-SalonAdmin/internal/usecase/compute_totals"
)

type ComputeTotalsUseCase interface {
	Execute(ctx context.Context, req *computeTotals.Request) (*computeTotals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
