package validate_passenger

import (
	"net/http"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/passengers/validate
// Ошибки полей не являются ошибкой запроса: ответ всегда 200 с признаком valid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passengers/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	errs := h.service.Validate(req.Record, req.Primary)
	if errs == nil {
		errs = map[string]string{}
	}

	h.logger.Info("POST /passengers/validate - primary=%t, invalid_fields=%d", req.Primary, len(errs))
	handlers.RespondJSON(w, http.StatusOK, ValidateResponse{
		Valid:  errs.IsEmpty(),
		Errors: errs,
	})
}
