package passengers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// PassengerRepository интерфейс репозитория пассажиров
type PassengerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	ListCompanions(ctx context.Context, primaryID int64) ([]*domain.Passenger, error)
	Promote(ctx context.Context, id int64) error
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
