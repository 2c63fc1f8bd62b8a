package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// RedisStore хранит черновики в Redis как JSON с TTL
type RedisStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewRedisStore создает хранилище черновиков в Redis
func NewRedisStore(client *redis.Client, namespace string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("%s:draft:%s", s.namespace, id)
}

// Save сохраняет черновик
func (s *RedisStore) Save(ctx context.Context, draft *domain.PassengerDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal draft %s: %v", ErrEncode, draft.ID, err)
	}

	if err := s.client.Set(ctx, s.key(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set draft %s: %v", ErrStorage, draft.ID, err)
	}

	return nil
}

// Get получает черновик
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.PassengerDraft, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get draft %s: %v", ErrStorage, id, err)
	}

	var draft domain.PassengerDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal draft %s: %v", ErrDecode, id, err)
	}

	return &draft, nil
}

// Delete удаляет черновик
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - del draft %s: %v", ErrStorage, id, err)
	}
	if removed == 0 {
		return ErrDraftNotFound
	}
	return nil
}
