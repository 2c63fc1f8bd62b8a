package passengers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	passengerRepo "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/passenger"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

// Service сервис для чтения пассажиров и повышения сопровождающих
type Service struct {
	passengerRepo PassengerRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса пассажиров
func NewService(
	passengerRepo PassengerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		passengerRepo: passengerRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Validate проверяет запись без сохранения; primary включает обязательность номера паспорта
func (s *Service) Validate(rec domain.PersonRecord, primary bool) domain.ValidationErrors {
	return validation.ValidateRecord(rec, validation.Options{Primary: primary, Now: s.timeProvider.Now()})
}

// GetByID получает пассажира вместе с его сопровождающими
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.PassengerWithCompanions, error) {
	s.logger.Info("GetByID: fetching passenger id=%d", id)

	p, err := s.getPassenger(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	companions, err := s.passengerRepo.ListCompanions(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list companions for passenger id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list companions: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched passenger id=%d with %d companions", id, len(companions))
	return &domain.PassengerWithCompanions{Passenger: p, Companions: companions}, nil
}

// ListCompanions получает сопровождающих основного пассажира
func (s *Service) ListCompanions(ctx context.Context, primaryID int64) ([]*domain.Passenger, error) {
	s.logger.Info("ListCompanions: fetching companions for passenger id=%d", primaryID)

	if _, err := s.getPassenger(ctx, "ListCompanions", primaryID); err != nil {
		return nil, err
	}

	companions, err := s.passengerRepo.ListCompanions(ctx, primaryID)
	if err != nil {
		s.logger.Error("ListCompanions: repository error for passenger id=%d: %v", primaryID, err)
		return nil, fmt.Errorf("%w: ListCompanions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCompanions: successfully fetched %d companions for passenger id=%d", len(companions), primaryID)
	return companions, nil
}

// Promote превращает сохраненного сопровождающего в самостоятельного основного пассажира
// Запись перепроверяется как основная (номер паспорта обязателен), затем primary_id сбрасывается в транзакции
func (s *Service) Promote(ctx context.Context, id int64) (*domain.Passenger, error) {
	s.logger.Info("Promote: promoting companion id=%d", id)

	var promoted *domain.Passenger

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.getPassenger(txCtx, "Promote", id)
		if err != nil {
			return err
		}

		if !p.IsCompanion() {
			s.logger.Warn("Promote: passenger id=%d is already a primary passenger", id)
			return ErrNotCompanion
		}

		if errs := s.Validate(p.Record, true); !errs.IsEmpty() {
			s.logger.Warn("Promote: companion id=%d is not valid as primary, fields=%v", id, errs.Fields())
			return validation.NewError(errs)
		}

		if err := s.passengerRepo.Promote(txCtx, id); err != nil {
			if errors.Is(err, passengerRepo.ErrNotCompanion) {
				return ErrNotCompanion
			}
			s.logger.Error("Promote: failed to promote companion id=%d: %v", id, err)
			return fmt.Errorf("%w: Promote - repository error: %v", ErrInternal, err)
		}

		p.PrimaryID = nil
		promoted = p
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Promote: companion id=%d is now a primary passenger", id)
	return promoted, nil
}

func (s *Service) getPassenger(ctx context.Context, op string, id int64) (*domain.Passenger, error) {
	p, err := s.passengerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, passengerRepo.ErrPassengerNotFound) {
			s.logger.Warn("%s: passenger id=%d not found", op, id)
			return nil, ErrPassengerNotFound
		}
		s.logger.Error("%s: repository error for passenger id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return p, nil
}
