package passenger_drafts

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	draftsService "github.com/m04kA/SMC-TravelDesk/internal/service/drafts"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCompanionID = "некорректный ID сопровождающего"
	msgDraftNotFound      = "черновик не найден или истек"
	msgCompanionNotFound  = "сопровождающий не найден"
)

// Handler обработчики формы создания пассажира, хранящейся на сервере
type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Open POST /api/v1/passenger-drafts
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Open(r.Context())
	if err != nil {
		h.respondError(w, "POST /passenger-drafts", "", err)
		return
	}

	h.logger.Info("POST /passenger-drafts - Draft opened: draft_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainDraft(draft))
}

// Get GET /api/v1/passenger-drafts/{draftId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		h.respondError(w, "GET /passenger-drafts/{draftId}", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(draft))
}

// SetPrimary PUT /api/v1/passenger-drafts/{draftId}/primary
// Запись сохраняется и при ошибках, ответ содержит текущие ошибки полей
func (h *Handler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var rec domain.PersonRecord
	if err := handlers.DecodeJSON(r, &rec); err != nil {
		h.logger.Warn("PUT /passenger-drafts/{draftId}/primary - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, errs, err := h.service.SetPrimary(r.Context(), draftID, rec)
	if err != nil {
		h.respondError(w, "PUT /passenger-drafts/{draftId}/primary", draftID, err)
		return
	}
	if errs == nil {
		errs = domain.ValidationErrors{}
	}

	h.logger.Info("PUT /passenger-drafts/{draftId}/primary - Primary set: draft_id=%s, invalid_fields=%d", draftID, len(errs))
	handlers.RespondJSON(w, http.StatusOK, SetPrimaryResponse{
		Draft:  FromDomainDraft(draft),
		Valid:  errs.IsEmpty(),
		Errors: errs,
	})
}

// AddCompanion POST /api/v1/passenger-drafts/{draftId}/companions
func (h *Handler) AddCompanion(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var rec domain.PersonRecord
	if err := handlers.DecodeJSON(r, &rec); err != nil {
		h.logger.Warn("POST /passenger-drafts/{draftId}/companions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, companionID, err := h.service.AddCompanion(r.Context(), draftID, rec)
	if err != nil {
		h.respondError(w, "POST /passenger-drafts/{draftId}/companions", draftID, err)
		return
	}

	h.logger.Info("POST /passenger-drafts/{draftId}/companions - Companion added: draft_id=%s, companion_id=%s",
		draftID, companionID)
	handlers.RespondJSON(w, http.StatusCreated, AddCompanionResponse{
		Draft:       FromDomainDraft(draft),
		CompanionID: companionID.String(),
	})
}

// UpdateCompanion PUT /api/v1/passenger-drafts/{draftId}/companions/{companionId}
func (h *Handler) UpdateCompanion(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	companionID, err := uuid.Parse(mux.Vars(r)["companionId"])
	if err != nil {
		h.logger.Warn("PUT /passenger-drafts/{draftId}/companions/{companionId} - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	var rec domain.PersonRecord
	if err := handlers.DecodeJSON(r, &rec); err != nil {
		h.logger.Warn("PUT /passenger-drafts/{draftId}/companions/{companionId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.UpdateCompanion(r.Context(), draftID, companionID, rec)
	if err != nil {
		h.respondError(w, "PUT /passenger-drafts/{draftId}/companions/{companionId}", draftID, err)
		return
	}

	h.logger.Info("PUT /passenger-drafts/{draftId}/companions/{companionId} - Companion updated: draft_id=%s, companion_id=%s",
		draftID, companionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(draft))
}

// RemoveCompanion DELETE /api/v1/passenger-drafts/{draftId}/companions/{companionId}
func (h *Handler) RemoveCompanion(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	companionID, err := uuid.Parse(mux.Vars(r)["companionId"])
	if err != nil {
		h.logger.Warn("DELETE /passenger-drafts/{draftId}/companions/{companionId} - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	draft, err := h.service.RemoveCompanion(r.Context(), draftID, companionID)
	if err != nil {
		h.respondError(w, "DELETE /passenger-drafts/{draftId}/companions/{companionId}", draftID, err)
		return
	}

	h.logger.Info("DELETE /passenger-drafts/{draftId}/companions/{companionId} - Companion removed: draft_id=%s, companion_id=%s",
		draftID, companionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(draft))
}

// Submit POST /api/v1/passenger-drafts/{draftId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	result, err := h.service.Submit(r.Context(), draftID)
	if err != nil {
		h.respondError(w, "POST /passenger-drafts/{draftId}/submit", draftID, err)
		return
	}

	h.logger.Info("POST /passenger-drafts/{draftId}/submit - Draft submitted: draft_id=%s, passenger_id=%d",
		draftID, result.Passenger.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromPassengerWithCompanions(result))
}

// Cancel DELETE /api/v1/passenger-drafts/{draftId}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	if err := h.service.Cancel(r.Context(), draftID); err != nil {
		h.respondError(w, "DELETE /passenger-drafts/{draftId}", draftID, err)
		return
	}

	h.logger.Info("DELETE /passenger-drafts/{draftId} - Draft cancelled: draft_id=%s", draftID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route, draftID string, err error) {
	if fields, ok := validation.AsError(err); ok {
		h.logger.Warn("%s - Validation failed: draft_id=%s, fields=%v", route, draftID, fields.Fields())
		handlers.RespondValidationError(w, fields)
		return
	}

	switch {
	case errors.Is(err, draftsService.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, draftsService.ErrCompanionNotFound):
		h.logger.Warn("%s - Companion not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgCompanionNotFound)

	default:
		h.logger.Error("%s - Failed: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondInternalError(w)
	}
}
