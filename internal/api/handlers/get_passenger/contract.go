package get_passenger

import (
	"context"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

type PassengerService interface {
	GetByID(ctx context.Context, id int64) (*domain.PassengerWithCompanions, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
