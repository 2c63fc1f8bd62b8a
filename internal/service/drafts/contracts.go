package drafts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Save(ctx context.Context, draft *domain.PassengerDraft) error
	Get(ctx context.Context, id string) (*domain.PassengerDraft, error)
	Delete(ctx context.Context, id string) error
}

// PassengerCreator интерфейс use case создания пассажира
type PassengerCreator interface {
	Execute(ctx context.Context, req *create_passenger.Request) (*create_passenger.Response, error)
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
