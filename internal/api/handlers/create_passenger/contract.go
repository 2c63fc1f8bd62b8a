package create_passenger

import (
	"context"

	createPassenger "github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
)

type CreatePassengerUseCase interface {
	Execute(ctx context.Context, req *createPassenger.Request) (*createPassenger.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
