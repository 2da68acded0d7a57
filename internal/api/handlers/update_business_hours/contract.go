package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonAdmin/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
