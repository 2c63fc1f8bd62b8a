package cupos

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	cupoRepo "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/cupo"
)

// Service сервис карточки cupo и передачи в продажу
type Service struct {
	cupoRepo     CupoRepository
	materializer *calendar.Materializer
	logger       Logger
}

// NewService создает новый экземпляр сервиса cupos
func NewService(cupoRepo CupoRepository, materializer *calendar.Materializer, logger Logger) *Service {
	return &Service{
		cupoRepo:     cupoRepo,
		materializer: materializer,
		logger:       logger,
	}
}

// GetByID получает cupo с вычисленными метриками заполненности
func (s *Service) GetByID(ctx context.Context, id int64) (*calendar.SlotView, error) {
	s.logger.Info("GetByID: fetching cupo id=%d", id)

	slot, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	view := s.materializer.Slot(*slot)
	return &view, nil
}

// Handoff формирует передачу cupo в оформление продажи
// Завершенные, отмененные и распроданные cupos не передаются
func (s *Service) Handoff(ctx context.Context, id int64) (*calendar.SlotView, error) {
	s.logger.Info("Handoff: preparing cupo id=%d", id)

	slot, err := s.get(ctx, "Handoff", id)
	if err != nil {
		return nil, err
	}

	handoff, err := calendar.NewHandoff(*slot)
	if err != nil {
		if errors.Is(err, calendar.ErrSlotNotReservable) {
			s.logger.Warn("Handoff: cupo id=%d is not reservable, status=%s, available=%d",
				id, slot.Status, slot.AvailableSeats())
			return nil, ErrNotReservable
		}
		return nil, fmt.Errorf("%w: Handoff: %v", ErrInternal, err)
	}

	view := s.materializer.Slot(handoff.Cupo)
	s.logger.Info("Handoff: cupo id=%d handed off, available=%d", id, view.AvailableSeats)
	return &view, nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.CupoSlot, error) {
	slot, err := s.cupoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, cupoRepo.ErrCupoNotFound) {
			s.logger.Warn("%s: cupo id=%d not found", op, id)
			return nil, ErrCupoNotFound
		}
		s.logger.Error("%s: repository error for cupo id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return slot, nil
}
