package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore хранит черновики в памяти процесса, используется когда Redis не настроен
// Черновики хранятся сериализованными, чтобы вызывающий код не делил с хранилищем изменяемое состояние
type MemoryStore struct {
	mu           sync.Mutex
	entries      map[string]memoryEntry
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewMemoryStore создает хранилище черновиков в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:      make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// Save сохраняет черновик
func (s *MemoryStore) Save(_ context.Context, draft *domain.PassengerDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal draft %s: %v", ErrEncode, draft.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[draft.ID] = memoryEntry{
		data:      data,
		expiresAt: s.timeProvider.Now().Add(s.ttl),
	}
	return nil
}

// Get получает черновик
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.PassengerDraft, error) {
	s.mu.Lock()
	entry, ok := s.lookupLocked(id)
	s.mu.Unlock()

	if !ok {
		return nil, ErrDraftNotFound
	}

	var draft domain.PassengerDraft
	if err := json.Unmarshal(entry.data, &draft); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal draft %s: %v", ErrDecode, id, err)
	}

	return &draft, nil
}

// Delete удаляет черновик
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookupLocked(id); !ok {
		return ErrDraftNotFound
	}
	delete(s.entries, id)
	return nil
}

// PurgeExpired удаляет истекшие черновики и возвращает их количество
func (s *MemoryStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	purged := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			purged++
		}
	}
	return purged
}

// lookupLocked возвращает неистекшую запись; истекшая удаляется
func (s *MemoryStore) lookupLocked(id string) (memoryEntry, bool) {
	entry, ok := s.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.timeProvider.Now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return memoryEntry{}, false
	}
	return entry, true
}
