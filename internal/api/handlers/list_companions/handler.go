package list_companions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	passengersService "github.com/m04kA/SMC-TravelDesk/internal/service/passengers"
)

const (
	msgInvalidPassengerID = "некорректный ID пассажира"
	msgPassengerNotFound  = "пассажир не найден"
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

// Handle GET /api/v1/passengers/{passengerId}/companions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passengerID, err := handlers.PathInt64(r, "passengerId")
	if err != nil {
		h.logger.Warn("GET /passengers/{passengerId}/companions - Invalid passenger ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPassengerID)
		return
	}

	companions, err := h.service.ListCompanions(r.Context(), passengerID)
	if err != nil {
		if errors.Is(err, passengersService.ErrPassengerNotFound) {
			h.logger.Warn("GET /passengers/{passengerId}/companions - Passenger not found: passenger_id=%d", passengerID)
			handlers.RespondNotFound(w, msgPassengerNotFound)
			return
		}
		h.logger.Error("GET /passengers/{passengerId}/companions - Failed to list companions: passenger_id=%d, error=%v",
			passengerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /passengers/{passengerId}/companions - Retrieved %d companions for passenger_id=%d",
		len(companions), passengerID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromPassengers(companions))
}
