package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
)

const (
	msgInvalidView   = "некорректный режим календаря, ожидается month, week или day"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD или M/D/YYYY"
	msgInvalidFilter = "некорректный фильтр serviceId или providerId"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/cupos/calendar?view=month&date=2024-02-10&serviceId=1&providerId=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query(), h.now())
	if err != nil {
		h.logger.Warn("GET /cupos/calendar - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidView):
			handlers.RespondBadRequest(w, msgInvalidView)
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			handlers.RespondBadRequest(w, msgInvalidFilter)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /cupos/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /cupos/calendar - Failed to build calendar: view=%s, error=%v", req.View, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cupos/calendar - Calendar built: view=%s, period=%s, cupos=%d",
		result.View, result.Period, result.Bucket.Len())
	handlers.RespondJSON(w, http.StatusOK, handlers.FromCalendar(result))
}
