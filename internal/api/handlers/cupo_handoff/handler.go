package cupo_handoff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	cuposService "github.com/m04kA/SMC-TravelDesk/internal/service/cupos"
)

const (
	msgInvalidCupoID = "некорректный ID cupo"
	msgCupoNotFound  = "cupo не найден"
	msgNotReservable = "cupo недоступен для продажи: нет мест, завершен или отменен"
)

type Handler struct {
	service CupoService
	logger  Logger
}

func NewHandler(service CupoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cupos/{cupoId}/handoff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cupoID, err := handlers.PathInt64(r, "cupoId")
	if err != nil {
		h.logger.Warn("POST /cupos/{cupoId}/handoff - Invalid cupo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCupoID)
		return
	}

	view, err := h.service.Handoff(r.Context(), cupoID)
	if err != nil {
		switch {
		case errors.Is(err, cuposService.ErrCupoNotFound):
			h.logger.Warn("POST /cupos/{cupoId}/handoff - Cupo not found: cupo_id=%d", cupoID)
			handlers.RespondNotFound(w, msgCupoNotFound)

		case errors.Is(err, cuposService.ErrNotReservable):
			h.logger.Warn("POST /cupos/{cupoId}/handoff - Cupo not reservable: cupo_id=%d", cupoID)
			handlers.RespondError(w, http.StatusConflict, msgNotReservable)

		default:
			h.logger.Error("POST /cupos/{cupoId}/handoff - Failed to hand off cupo: cupo_id=%d, error=%v", cupoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cupos/{cupoId}/handoff - Cupo handed off: cupo_id=%d, available=%d", cupoID, view.AvailableSeats)
	handlers.RespondJSON(w, http.StatusOK, HandoffResponse{Cupo: handlers.FromSlotView(*view)})
}
