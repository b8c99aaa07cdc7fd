package jobs

import "context"

// AppointmentRepository доступ к бронированиям для фоновых задач
type AppointmentRepository interface {
	CompleteFinished(ctx context.Context) (int64, error)
}

// PromotionRepository доступ к промоакциям для фоновых задач
type PromotionRepository interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
