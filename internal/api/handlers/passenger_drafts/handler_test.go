package passenger_drafts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	draftStore "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/draft"
	draftsService "github.com/m04kA/SMC-TravelDesk/internal/service/drafts"
	createPassenger "github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
)

type stubCreator struct {
	got *createPassenger.Request
}

func (s *stubCreator) Execute(_ context.Context, req *createPassenger.Request) (*createPassenger.Response, error) {
	s.got = req
	resp := &createPassenger.Response{Passenger: &domain.Passenger{ID: 100, Record: req.Primary}}
	for i, c := range req.Companions {
		resp.Companions = append(resp.Companions, &domain.Passenger{ID: int64(101 + i), Record: c.Record})
	}
	return resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(creator *stubCreator) *mux.Router {
	svc := draftsService.NewService(draftStore.NewMemoryStore(time.Hour), creator, nopLogger{})
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/passenger-drafts", h.Open).Methods(http.MethodPost)
	r.HandleFunc("/passenger-drafts/{draftId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/passenger-drafts/{draftId}", h.Cancel).Methods(http.MethodDelete)
	r.HandleFunc("/passenger-drafts/{draftId}/primary", h.SetPrimary).Methods(http.MethodPut)
	r.HandleFunc("/passenger-drafts/{draftId}/companions", h.AddCompanion).Methods(http.MethodPost)
	r.HandleFunc("/passenger-drafts/{draftId}/companions/{companionId}", h.UpdateCompanion).Methods(http.MethodPut)
	r.HandleFunc("/passenger-drafts/{draftId}/companions/{companionId}", h.RemoveCompanion).Methods(http.MethodDelete)
	r.HandleFunc("/passenger-drafts/{draftId}/submit", h.Submit).Methods(http.MethodPost)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandler_DraftLifecycle(t *testing.T) {
	creator := &stubCreator{}
	r := newRouter(creator)

	rec := do(t, r, http.MethodPost, "/passenger-drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	draft := decode[DraftResponse](t, rec)
	base := "/passenger-drafts/" + draft.ID

	// основная запись сохраняется вместе с ошибками
	rec = do(t, r, http.MethodPut, base+"/primary", domain.PersonRecord{Name: "John", Surname: "Doe", DNI: "30123456"})
	require.Equal(t, http.StatusOK, rec.Code)
	primary := decode[SetPrimaryResponse](t, rec)
	assert.False(t, primary.Valid)
	assert.Contains(t, primary.Errors, domain.FieldPassportNumber)

	rec = do(t, r, http.MethodPut, base+"/primary",
		domain.PersonRecord{Name: "John", Surname: "Doe", DNI: "30123456", PassportNumber: "AAB123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[SetPrimaryResponse](t, rec).Valid)

	// невалидный сопровождающий не добавляется
	rec = do(t, r, http.MethodPost, base+"/companions", domain.PersonRecord{Name: "Ann", Surname: "Doe"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[handlers.ValidationErrorResponse](t, rec).Fields, domain.FieldDNI)

	rec = do(t, r, http.MethodPost, base+"/companions", domain.PersonRecord{Name: "Ann", Surname: "Doe", DNI: "1234567"})
	require.Equal(t, http.StatusCreated, rec.Code)
	ann := decode[AddCompanionResponse](t, rec).CompanionID

	rec = do(t, r, http.MethodPost, base+"/companions", domain.PersonRecord{Name: "Bob", Surname: "Doe", DNI: "7654321"})
	require.Equal(t, http.StatusCreated, rec.Code)
	bob := decode[AddCompanionResponse](t, rec).CompanionID

	// редактирование сохраняет позицию
	rec = do(t, r, http.MethodPut, base+"/companions/"+ann, domain.PersonRecord{Name: "Anna", Surname: "Doe", DNI: "1234567"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[DraftResponse](t, rec)
	require.Len(t, updated.Companions, 2)
	assert.Equal(t, "Anna", updated.Companions[0].Record.Name)
	assert.Equal(t, bob, updated.Companions[1].ID)

	rec = do(t, r, http.MethodDelete, base+"/companions/"+ann, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	removed := decode[DraftResponse](t, rec)
	require.Len(t, removed.Companions, 1)
	assert.Equal(t, 0, removed.Companions[0].Position)

	rec = do(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[handlers.PassengerWithCompanionsResponse](t, rec)
	assert.Equal(t, int64(100), created.Passenger.ID)
	require.Len(t, creator.got.Companions, 1)
	assert.Equal(t, bob, creator.got.Companions[0].Key)

	rec = do(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Errors(t *testing.T) {
	r := newRouter(&stubCreator{})

	rec := do(t, r, http.MethodGet, "/passenger-drafts/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodPost, "/passenger-drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/passenger-drafts/" + decode[DraftResponse](t, rec).ID

	rec = do(t, r, http.MethodDelete, base+"/companions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodDelete, base+"/companions/6f1c7e1a-4b7e-4a4e-9c55-1f7a8e0f3b2d", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
