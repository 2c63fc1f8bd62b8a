package create_passenger

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
	"github.com/m04kA/SMC-TravelDesk/pkg/ptr"
)

// UseCase use case для создания пассажира вместе с сопровождающими
type UseCase struct {
	passengerRepo PassengerRepository
	fileClient    FileServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	passengerRepo PassengerRepository,
	fileClient FileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		passengerRepo: passengerRepo,
		fileClient:    fileClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания пассажира
// Основная запись и сопровождающие сохраняются в одной транзакции: либо все, либо никто
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePassenger: dni=%s, companions=%d", req.Primary.DNI, len(req.Companions))

	// 1. Валидация всех записей
	now := uc.timeProvider.Now()
	if errs := validateRequest(req, now); !errs.IsEmpty() {
		uc.logger.Warn("CreatePassenger: validation failed, fields=%v", errs.Fields())
		return nil, validation.NewError(errs)
	}

	// 2. Нормализация перед сохранением
	primary := validation.Normalize(req.Primary)
	companions := make([]domain.PersonRecord, 0, len(req.Companions))
	for _, c := range req.Companions {
		companions = append(companions, validation.Normalize(c.Record))
	}

	// 3. Проверяем, что сканы паспортов загружены
	imageErrs, err := uc.checkPassportImages(ctx, req, primary, companions)
	if err != nil {
		uc.logger.Error("CreatePassenger: %v", err)
		return nil, err
	}
	if !imageErrs.IsEmpty() {
		uc.logger.Warn("CreatePassenger: passport images rejected, fields=%v", imageErrs.Fields())
		return nil, validation.NewError(imageErrs)
	}

	result := &Response{}

	// 4. Сохраняем основного пассажира и сопровождающих в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.passengerRepo.Create(txCtx, &domain.Passenger{Record: primary})
		if err != nil {
			uc.logger.Error("CreatePassenger: failed to create primary passenger: %v", err)
			return fmt.Errorf("%w: failed to create primary passenger: %v", ErrInternal, err)
		}
		result.Passenger = created

		result.Companions = make([]*domain.Passenger, 0, len(companions))
		for i, rec := range companions {
			companion, err := uc.passengerRepo.Create(txCtx, &domain.Passenger{
				PrimaryID: ptr.Ptr(created.ID),
				Record:    rec,
			})
			if err != nil {
				uc.logger.Error("CreatePassenger: failed to create companion #%d for passenger id=%d: %v", i, created.ID, err)
				return fmt.Errorf("%w: failed to create companion: %v", ErrInternal, err)
			}
			result.Companions = append(result.Companions, companion)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePassenger: successfully created passenger id=%d with %d companions",
		result.Passenger.ID, len(result.Companions))

	return result, nil
}
