package passenger_drafts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	createPassenger "github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
)

type DraftService interface {
	Open(ctx context.Context) (*domain.PassengerDraft, error)
	Get(ctx context.Context, id string) (*domain.PassengerDraft, error)
	SetPrimary(ctx context.Context, id string, rec domain.PersonRecord) (*domain.PassengerDraft, domain.ValidationErrors, error)
	AddCompanion(ctx context.Context, id string, rec domain.PersonRecord) (*domain.PassengerDraft, uuid.UUID, error)
	UpdateCompanion(ctx context.Context, id string, companionID uuid.UUID, rec domain.PersonRecord) (*domain.PassengerDraft, error)
	RemoveCompanion(ctx context.Context, id string, companionID uuid.UUID) (*domain.PassengerDraft, error)
	Submit(ctx context.Context, id string) (*createPassenger.Response, error)
	Cancel(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
