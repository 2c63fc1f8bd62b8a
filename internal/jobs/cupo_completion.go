package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
)

// CupoCompleter переводит в completed cupos с датой услуги раньше before
type CupoCompleter interface {
	CompletePast(ctx context.Context, before time.Time) (int64, error)
}

// CompletionObserver учитывает завершенные cupos
type CompletionObserver interface {
	AddCuposCompleted(n int64)
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

// CupoCompletion периодически завершает прошедшие cupos, чтобы календарь не предлагал их к продаже
type CupoCompletion struct {
	cron         *cron.Cron
	schedule     string
	completer    CupoCompleter
	observer     CompletionObserver
	timeProvider TimeProvider
	timeout      time.Duration
	logger       Logger
}

// NewCupoCompletion создает задачу; schedule в формате cron (5 полей или дескрипторы @every, @daily)
func NewCupoCompletion(schedule string, completer CupoCompleter, observer CompletionObserver, logger Logger) *CupoCompletion {
	return &CupoCompletion{
		cron:         cron.New(),
		schedule:     schedule,
		completer:    completer,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		timeout:      time.Minute,
		logger:       logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (j *CupoCompletion) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.Run(ctx)
	}); err != nil {
		return fmt.Errorf("jobs: invalid cupo completion schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("CupoCompletion: scheduler started, schedule=%q", j.schedule)
	return nil
}

// Stop останавливает планировщик и ждет завершения запущенной задачи
func (j *CupoCompletion) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("CupoCompletion: scheduler stopped")
}

// Run один проход: все открытые cupos с датой раньше сегодняшнего дня становятся completed
func (j *CupoCompletion) Run(ctx context.Context) (int64, error) {
	today := calendar.DateOnly(j.timeProvider.Now())

	n, err := j.completer.CompletePast(ctx, today)
	if err != nil {
		j.logger.Error("CupoCompletion: failed to complete cupos before %s: %v", today.Format("2006-01-02"), err)
		return 0, err
	}

	if j.observer != nil {
		j.observer.AddCuposCompleted(n)
	}
	if n > 0 {
		j.logger.Info("CupoCompletion: %d cupos before %s marked as completed", n, today.Format("2006-01-02"))
	}
	return n, nil
}
