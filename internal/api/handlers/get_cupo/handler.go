package get_cupo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	cuposService "github.com/m04kA/SMC-TravelDesk/internal/service/cupos"
)

const (
	msgInvalidCupoID = "некорректный ID cupo"
	msgCupoNotFound  = "cupo не найден"
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

// Handle GET /api/v1/cupos/{cupoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cupoID, err := handlers.PathInt64(r, "cupoId")
	if err != nil {
		h.logger.Warn("GET /cupos/{cupoId} - Invalid cupo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCupoID)
		return
	}

	view, err := h.service.GetByID(r.Context(), cupoID)
	if err != nil {
		if errors.Is(err, cuposService.ErrCupoNotFound) {
			h.logger.Warn("GET /cupos/{cupoId} - Cupo not found: cupo_id=%d", cupoID)
			handlers.RespondNotFound(w, msgCupoNotFound)
			return
		}
		h.logger.Error("GET /cupos/{cupoId} - Failed to get cupo: cupo_id=%d, error=%v", cupoID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cupos/{cupoId} - Cupo retrieved successfully: cupo_id=%d", cupoID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSlotView(*view))
}
