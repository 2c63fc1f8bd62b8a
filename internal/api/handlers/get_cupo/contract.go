package get_cupo

import (
	"context"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
)

type CupoService interface {
	GetByID(ctx context.Context, id int64) (*calendar.SlotView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
