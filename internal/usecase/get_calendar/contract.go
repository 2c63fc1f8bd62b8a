package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// CupoRepository интерфейс репозитория cupos
type CupoRepository interface {
	GetByRange(ctx context.Context, filter domain.CupoFilter) ([]domain.CupoSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
