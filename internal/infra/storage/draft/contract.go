package draft

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// Store хранилище черновиков формы создания пассажира
// Реализации должны быть безопасны для конкурентного использования
type Store interface {
	// Save сохраняет или перезаписывает черновик и продлевает его TTL
	Save(ctx context.Context, draft *domain.PassengerDraft) error

	// Get возвращает черновик или ErrDraftNotFound
	Get(ctx context.Context, id string) (*domain.PassengerDraft, error)

	// Delete удаляет черновик; отсутствие черновика считается ошибкой ErrDraftNotFound
	Delete(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
