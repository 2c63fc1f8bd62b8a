package drafts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	draftStore "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) Execute(ctx context.Context, req *create_passenger.Request) (*create_passenger.Response, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*create_passenger.Response); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(creator PassengerCreator) *Service {
	s := NewService(draftStore.NewMemoryStore(time.Hour), creator, nopLogger{})
	s.timeProvider = fixedTime{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	return s
}

func companion(name, dni string) domain.PersonRecord {
	return domain.PersonRecord{Name: name, Surname: "Doe", DNI: dni}
}

func TestService_AddCompanion(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)

	_, first, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)
	got, second, err := s.AddCompanion(ctx, d.ID, companion("Bob", "7654321"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, got.Companions.Len())
	assert.Equal(t, 0, got.Companions.IndexOf(first))
	assert.Equal(t, 1, got.Companions.IndexOf(second))
	assert.Equal(t, domain.FormIdle, got.Companions.Mode())
}

func TestService_AddCompanion_InvalidLeavesDraftUnchanged(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, _, err = s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)

	_, _, err = s.AddCompanion(ctx, d.ID, companion("Bob", ""))

	fields, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.FieldDNI}, fields.Fields())

	stored, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Companions.Len())
	assert.Equal(t, domain.FormIdle, stored.Companions.Mode())
}

func TestService_UpdateCompanion_KeepsPosition(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, first, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)
	_, _, err = s.AddCompanion(ctx, d.ID, companion("Bob", "7654321"))
	require.NoError(t, err)

	got, err := s.UpdateCompanion(ctx, d.ID, first, companion("Anna", "1234567"))
	require.NoError(t, err)

	records := got.Companions.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Anna", records[0].Name)
	assert.Equal(t, "Bob", records[1].Name)
}

func TestService_UpdateCompanion_Errors(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, id, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)

	_, err = s.UpdateCompanion(ctx, d.ID, uuid.New(), companion("Bob", "7654321"))
	assert.ErrorIs(t, err, ErrCompanionNotFound)

	_, err = s.UpdateCompanion(ctx, d.ID, id, companion("B0b", "7654321"))
	_, ok := validation.AsError(err)
	assert.True(t, ok)

	stored, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	rec, _ := stored.Companions.Get(id)
	assert.Equal(t, "Ann", rec.Name)
}

func TestService_RemoveCompanion(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, first, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)
	_, second, err := s.AddCompanion(ctx, d.ID, companion("Bob", "7654321"))
	require.NoError(t, err)

	got, err := s.RemoveCompanion(ctx, d.ID, first)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Companions.Len())
	assert.Equal(t, 0, got.Companions.IndexOf(second))

	_, err = s.RemoveCompanion(ctx, d.ID, first)
	assert.ErrorIs(t, err, ErrCompanionNotFound)
}

func TestService_SetPrimary_StoresWithErrors(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)

	got, errs, err := s.SetPrimary(ctx, d.ID, domain.PersonRecord{Name: "John", Surname: "Doe", DNI: "30123456"})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FieldPassportNumber}, errs.Fields())
	assert.Equal(t, "John", got.Primary.Name)
}

func TestService_Submit(t *testing.T) {
	creator := &mockCreator{}
	s := newService(creator)
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	primary := domain.PersonRecord{Name: "John", Surname: "Doe", DNI: "30123456", PassportNumber: "AAB123"}
	_, _, err = s.SetPrimary(ctx, d.ID, primary)
	require.NoError(t, err)
	_, companionID, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)

	created := &create_passenger.Response{Passenger: &domain.Passenger{ID: 42, Record: primary}}
	creator.On("Execute", mock.Anything, mock.MatchedBy(func(req *create_passenger.Request) bool {
		return req.Primary == primary &&
			len(req.Companions) == 1 &&
			req.Companions[0].Key == companionID.String()
	})).Return(created, nil).Once()

	res, err := s.Submit(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Passenger.ID)

	_, err = s.Get(ctx, d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	creator.AssertExpectations(t)
}

func TestService_Submit_FailureKeepsDraft(t *testing.T) {
	creator := &mockCreator{}
	s := newService(creator)
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, _, err = s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)

	creator.On("Execute", mock.Anything, mock.Anything).
		Return(nil, validation.NewError(domain.ValidationErrors{domain.FieldName: "First name is required"}))

	_, err = s.Submit(ctx, d.ID)
	_, ok := validation.AsError(err)
	assert.True(t, ok)

	stored, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Companions.Len())
}

func TestService_Cancel(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(ctx, d.ID))
	assert.ErrorIs(t, s.Cancel(ctx, d.ID), ErrDraftNotFound)

	_, _, err = s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_StoreError(t *testing.T) {
	store := &failingStore{err: errors.New("redis down")}
	s := NewService(store, &mockCreator{}, nopLogger{})

	_, err := s.Open(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = s.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_LocksReleased(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, _, err := s.SetPrimary(ctx, uuid.NewString(), companion("Ann", "1234567"))
		require.ErrorIs(t, err, ErrDraftNotFound)
		_, err = s.RemoveCompanion(ctx, uuid.NewString(), uuid.New())
		require.ErrorIs(t, err, ErrDraftNotFound)
	}

	d, err := s.Open(ctx)
	require.NoError(t, err)
	_, _, err = s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
	require.NoError(t, err)
	_, _, err = s.AddCompanion(ctx, d.ID, companion("B0b", "1234567"))
	require.Error(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.locks)
}

func TestService_LocksSerializeConcurrentChanges(t *testing.T) {
	s := newService(&mockCreator{})
	ctx := context.Background()

	d, err := s.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.AddCompanion(ctx, d.ID, companion("Ann", "1234567"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Companions.Len())

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.locks)
}

type failingStore struct{ err error }

func (f *failingStore) Save(context.Context, *domain.PassengerDraft) error { return f.err }
func (f *failingStore) Get(context.Context, string) (*domain.PassengerDraft, error) {
	return nil, f.err
}
func (f *failingStore) Delete(context.Context, string) error { return f.err }
