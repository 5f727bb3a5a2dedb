package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Key ключ документа настроек в Redis
const Key = "photostudio:availability_settings:v1"

// RedisClient подмножество команд go-redis, используемых кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Repository кэш настроек доступности в Redis
type Repository struct {
	client RedisClient
	ttl    time.Duration
}

// NewRepository создает новый экземпляр кэша настроек
func NewRepository(client RedisClient, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Get возвращает настройки из кэша
// ErrCacheMiss, если ключа нет
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	raw, err := r.client.Get(ctx, Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var cached cachedSettings
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return cached.toDomain(), nil
}

// Set сохраняет настройки в кэш с TTL
func (r *Repository) Set(ctx context.Context, settings *domain.AvailabilitySettings) error {
	raw, err := json.Marshal(fromDomain(settings))
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCache, err)
	}

	if err := r.client.Set(ctx, Key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}

	return nil
}

// Delete удаляет настройки из кэша
func (r *Repository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrCache, err)
	}
	return nil
}
