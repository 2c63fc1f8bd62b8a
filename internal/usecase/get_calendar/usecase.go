package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// UseCase use case для построения календаря cupos
type UseCase struct {
	cupoRepo     CupoRepository
	materializer *calendar.Materializer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cupoRepo CupoRepository,
	materializer *calendar.Materializer,
	logger Logger,
) *UseCase {
	return &UseCase{
		cupoRepo:     cupoRepo,
		materializer: materializer,
		logger:       logger,
	}
}

// Execute выбирает cupos за период режима и строит представление
// Каждый вызов строит bucket заново, без переиспользования прошлых выборок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: view=%s, date=%s", req.View, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.View == "" {
		req.View = calendar.ViewMonth
	}
	if _, err := calendar.ParseViewMode(string(req.View)); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Выборка и группировка
	period := calendar.PeriodFor(req.View, req.Date)
	bucket, err := uc.Fetch(ctx, period, req.Filter)
	if err != nil {
		return nil, err
	}

	// 3. Представление для режима
	resp := uc.Materialize(req.View, req.Date, bucket)

	uc.logger.Info("GetCalendar: period=%s, cupos=%d", period, bucket.Len())
	return resp, nil
}

// Fetch выбирает cupos за период и строит bucket
func (uc *UseCase) Fetch(ctx context.Context, period calendar.Period, filter Filter) (*calendar.Bucket, error) {
	slots, err := uc.cupoRepo.GetByRange(ctx, domain.CupoFilter{
		StartDate:  period.Start,
		EndDate:    period.End,
		ServiceID:  filter.ServiceID,
		ProviderID: filter.ProviderID,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get cupos for period=%s: %v", period, err)
		return nil, fmt.Errorf("%w: failed to get cupos: %v", ErrInternal, err)
	}

	return calendar.BuildBucket(period, slots), nil
}

// Materialize строит представление bucket для режима view и опорной даты ref
func (uc *UseCase) Materialize(view calendar.ViewMode, ref time.Time, bucket *calendar.Bucket) *Response {
	resp := &Response{
		View:      view,
		Date:      calendar.DateOnly(ref),
		Period:    bucket.Period(),
		Bucket:    bucket,
		DayCounts: bucket.DayCounts(),
	}

	switch view {
	case calendar.ViewWeek:
		grid := uc.materializer.Week(bucket, ref)
		resp.Week = &grid
	case calendar.ViewDay:
		day := uc.materializer.Day(bucket, ref)
		resp.Day = &day
	default:
		grid := uc.materializer.Month(bucket, ref)
		resp.Month = &grid
	}

	return resp
}
