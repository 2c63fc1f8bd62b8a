package create_passenger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// PassengerRepository интерфейс репозитория пассажиров
type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) (*domain.Passenger, error)
}

// FileServiceClient интерфейс клиента файлового сервиса
type FileServiceClient interface {
	Exists(ctx context.Context, filename string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
