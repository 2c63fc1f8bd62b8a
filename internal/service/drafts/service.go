package drafts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	draftStore "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

// Service сервис формы создания пассажира, хранящейся на сервере между запросами
// Черновик держит основную запись и упорядоченный список сопровождающих
type Service struct {
	store        DraftStore
	creator      PassengerCreator
	timeProvider TimeProvider
	logger       Logger

	// изменения одного черновика выполняются последовательно: прочитать, изменить, сохранить
	mu    sync.Mutex
	locks map[string]*draftLock
}

// draftLock удаляется из карты, когда его больше никто не держит и не ждет
type draftLock struct {
	mu   sync.Mutex
	refs int
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(store DraftStore, creator PassengerCreator, logger Logger) *Service {
	return &Service{
		store:        store,
		creator:      creator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		locks:        make(map[string]*draftLock),
	}
}

// Open создает пустой черновик
func (s *Service) Open(ctx context.Context) (*domain.PassengerDraft, error) {
	now := s.timeProvider.Now()
	draft := &domain.PassengerDraft{
		ID:         uuid.NewString(),
		Companions: domain.NewCompanionList(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("Open: failed to save draft: %v", err)
		return nil, fmt.Errorf("%w: Open - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Open: draft id=%s created", draft.ID)
	return draft, nil
}

// Get возвращает черновик
func (s *Service) Get(ctx context.Context, id string) (*domain.PassengerDraft, error) {
	return s.load(ctx, "Get", id)
}

// SetPrimary заменяет основную запись черновика
// Запись сохраняется даже с ошибками: форма заполняется постепенно, ошибки возвращаются для показа
func (s *Service) SetPrimary(ctx context.Context, id string, rec domain.PersonRecord) (*domain.PassengerDraft, domain.ValidationErrors, error) {
	var errs domain.ValidationErrors

	draft, err := s.mutate(ctx, "SetPrimary", id, func(d *domain.PassengerDraft) error {
		d.Primary = rec
		errs = validation.ValidateRecord(rec, s.options(true))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return draft, errs, nil
}

// AddCompanion валидирует запись и добавляет ее в конец списка сопровождающих
// При ошибках валидации черновик не меняется
func (s *Service) AddCompanion(ctx context.Context, id string, rec domain.PersonRecord) (*domain.PassengerDraft, uuid.UUID, error) {
	var companionID uuid.UUID

	draft, err := s.mutate(ctx, "AddCompanion", id, func(d *domain.PassengerDraft) error {
		d.Companions.OpenAdd()
		if err := d.Companions.SetDraft(rec); err != nil {
			return err
		}

		saved, errs, err := d.Companions.Save(validation.Validator(s.options(false)))
		if err != nil {
			return err
		}
		if !errs.IsEmpty() {
			s.logger.Warn("AddCompanion: validation failed for draft id=%s, fields=%v", id, errs.Fields())
			return validation.NewError(errs)
		}

		companionID = saved
		return nil
	})
	if err != nil {
		return nil, uuid.Nil, err
	}

	s.logger.Info("AddCompanion: companion id=%s added to draft id=%s", companionID, id)
	return draft, companionID, nil
}

// UpdateCompanion заменяет запись сопровождающего на том же месте списка
func (s *Service) UpdateCompanion(ctx context.Context, id string, companionID uuid.UUID, rec domain.PersonRecord) (*domain.PassengerDraft, error) {
	draft, err := s.mutate(ctx, "UpdateCompanion", id, func(d *domain.PassengerDraft) error {
		if err := d.Companions.OpenEdit(companionID); err != nil {
			return err
		}
		if err := d.Companions.SetDraft(rec); err != nil {
			return err
		}

		_, errs, err := d.Companions.Save(validation.Validator(s.options(false)))
		if err != nil {
			return err
		}
		if !errs.IsEmpty() {
			s.logger.Warn("UpdateCompanion: validation failed for companion id=%s, fields=%v", companionID, errs.Fields())
			return validation.NewError(errs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateCompanion: companion id=%s updated in draft id=%s", companionID, id)
	return draft, nil
}

// RemoveCompanion удаляет сопровождающего из черновика без валидации
func (s *Service) RemoveCompanion(ctx context.Context, id string, companionID uuid.UUID) (*domain.PassengerDraft, error) {
	draft, err := s.mutate(ctx, "RemoveCompanion", id, func(d *domain.PassengerDraft) error {
		return d.Companions.Remove(companionID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RemoveCompanion: companion id=%s removed from draft id=%s", companionID, id)
	return draft, nil
}

// Submit отправляет черновик на создание пассажира и удаляет его после успеха
// При любой ошибке черновик остается без изменений
func (s *Service) Submit(ctx context.Context, id string) (*create_passenger.Response, error) {
	unlock := s.lock(id)
	defer unlock()

	draft, err := s.load(ctx, "Submit", id)
	if err != nil {
		return nil, err
	}

	req := &create_passenger.Request{Primary: draft.Primary}
	for _, c := range draft.Companions.Companions() {
		req.Companions = append(req.Companions, create_passenger.CompanionInput{
			Key:    c.ID.String(),
			Record: c.Record,
		})
	}

	created, err := s.creator.Execute(ctx, req)
	if err != nil {
		s.logger.Warn("Submit: draft id=%s was not submitted: %v", id, err)
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, draftStore.ErrDraftNotFound) {
		// пассажир уже создан, черновик просто доживет до TTL
		s.logger.Error("Submit: failed to delete draft id=%s: %v", id, err)
	}

	s.logger.Info("Submit: draft id=%s submitted as passenger id=%d", id, created.Passenger.ID)
	return created, nil
}

// Cancel удаляет черновик без сохранения
func (s *Service) Cancel(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			s.logger.Warn("Cancel: draft id=%s not found", id)
			return ErrDraftNotFound
		}
		s.logger.Error("Cancel: failed to delete draft id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: draft id=%s cancelled", id)
	return nil
}

// mutate загружает черновик, применяет fn и сохраняет результат
// Если fn вернула ошибку, черновик в хранилище не меняется
func (s *Service) mutate(ctx context.Context, op, id string, fn func(d *domain.PassengerDraft) error) (*domain.PassengerDraft, error) {
	unlock := s.lock(id)
	defer unlock()

	draft, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if err := fn(draft); err != nil {
		if errors.Is(err, domain.ErrCompanionNotFound) {
			s.logger.Warn("%s: companion not found in draft id=%s", op, id)
			return nil, ErrCompanionNotFound
		}
		if _, ok := validation.AsError(err); ok {
			return nil, err
		}
		s.logger.Error("%s: failed to apply change to draft id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}

	draft.UpdatedAt = s.timeProvider.Now()
	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("%s: failed to save draft id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}

	return draft, nil
}

func (s *Service) load(ctx context.Context, op, id string) (*domain.PassengerDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			s.logger.Warn("%s: draft id=%s not found", op, id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("%s: failed to load draft id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
	if draft.Companions == nil {
		draft.Companions = domain.NewCompanionList()
	}
	return draft, nil
}

func (s *Service) options(primary bool) validation.Options {
	return validation.Options{Primary: primary, Now: s.timeProvider.Now()}
}

// lock захватывает блокировку черновика и возвращает функцию освобождения
func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &draftLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		defer s.mu.Unlock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
	}
}
