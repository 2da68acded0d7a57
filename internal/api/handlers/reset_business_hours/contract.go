package reset_business_hours

import "context"

type SettingsService interface {
	ResetResource(ctx context.Context, resourceID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
