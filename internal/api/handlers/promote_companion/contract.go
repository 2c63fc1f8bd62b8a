package promote_companion

import (
	"context"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

type PassengerService interface {
	Promote(ctx context.Context, id int64) (*domain.Passenger, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
