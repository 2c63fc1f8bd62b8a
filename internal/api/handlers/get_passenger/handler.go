package get_passenger

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

// Handle GET /api/v1/passengers/{passengerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passengerID, err := handlers.PathInt64(r, "passengerId")
	if err != nil {
		h.logger.Warn("GET /passengers/{passengerId} - Invalid passenger ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPassengerID)
		return
	}

	result, err := h.service.GetByID(r.Context(), passengerID)
	if err != nil {
		if errors.Is(err, passengersService.ErrPassengerNotFound) {
			h.logger.Warn("GET /passengers/{passengerId} - Passenger not found: passenger_id=%d", passengerID)
			handlers.RespondNotFound(w, msgPassengerNotFound)
			return
		}
		h.logger.Error("GET /passengers/{passengerId} - Failed to get passenger: passenger_id=%d, error=%v", passengerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /passengers/{passengerId} - Passenger retrieved successfully: passenger_id=%d", passengerID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromPassengerWithCompanions(result))
}
