package cms_webhook

import "context"

type SettingsService interface {
	Invalidate(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
