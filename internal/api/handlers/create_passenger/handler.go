package create_passenger

import (
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CreatePassengerUseCase
	logger  Logger
}

func NewHandler(useCase CreatePassengerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/passengers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePassengerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passengers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if fields, ok := validation.AsError(err); ok {
			h.logger.Warn("POST /passengers - Validation failed: fields=%v", fields.Fields())
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("POST /passengers - Failed to create passenger: dni=%s, error=%v", req.Primary.DNI, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /passengers - Passenger created successfully: passenger_id=%d, companions=%d",
		result.Passenger.ID, len(result.Companions))
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromPassengerWithCompanions(result))
}
