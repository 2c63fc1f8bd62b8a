package promote_companion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	passengersService "github.com/m04kA/SMC-TravelDesk/internal/service/passengers"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

const (
	msgInvalidPassengerID = "некорректный ID пассажира"
	msgPassengerNotFound  = "пассажир не найден"
	msgNotCompanion       = "пассажир уже является основным"
)

type Handler struct {
	service PassengerService
	logger  Logger
}

func NewHandler(service PassengerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/passengers/{passengerId}/promote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passengerID, err := handlers.PathInt64(r, "passengerId")
	if err != nil {
		h.logger.Warn("POST /passengers/{passengerId}/promote - Invalid passenger ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPassengerID)
		return
	}

	promoted, err := h.service.Promote(r.Context(), passengerID)
	if err != nil {
		if fields, ok := validation.AsError(err); ok {
			h.logger.Warn("POST /passengers/{passengerId}/promote - Validation failed: passenger_id=%d, fields=%v",
				passengerID, fields.Fields())
			handlers.RespondValidationError(w, fields)
			return
		}

		switch {
		case errors.Is(err, passengersService.ErrPassengerNotFound):
			h.logger.Warn("POST /passengers/{passengerId}/promote - Passenger not found: passenger_id=%d", passengerID)
			handlers.RespondNotFound(w, msgPassengerNotFound)

		case errors.Is(err, passengersService.ErrNotCompanion):
			h.logger.Warn("POST /passengers/{passengerId}/promote - Not a companion: passenger_id=%d", passengerID)
			handlers.RespondError(w, http.StatusConflict, msgNotCompanion)

		default:
			h.logger.Error("POST /passengers/{passengerId}/promote - Failed to promote: passenger_id=%d, error=%v",
				passengerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passengers/{passengerId}/promote - Companion promoted: passenger_id=%d", passengerID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromPassenger(promoted))
}
