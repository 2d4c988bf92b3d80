package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cityworks/facilitybooking/config"
	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client        *redis.Client
	facilitiesTTL time.Duration
	sessionTTL    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, facilitiesTTL, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:        redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		facilitiesTTL: facilitiesTTL,
		sessionTTL:    sessionTTL,
	}
}

func (c *RedisCache) GetFacilities(ctx context.Context) ([]domain.Facility, error) {
	data, err := c.client.Get(ctx, facilitiesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var facilities []domain.Facility
	if err := json.Unmarshal(data, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (c *RedisCache) SetFacilities(ctx context.Context, facilities []domain.Facility) error {
	payload, err := json.Marshal(facilities)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, facilitiesKey(), payload, c.facilitiesTTL).Err()
}

// InvalidateFacilities drops the cached list after any facility mutation so
// the next read goes back to the store.
func (c *RedisCache) InvalidateFacilities(ctx context.Context) error {
	return c.client.Del(ctx, facilitiesKey()).Err()
}

func (c *RedisCache) PutSession(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.Token), payload, c.sessionTTL).Err()
}

func (c *RedisCache) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *RedisCache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKey(token)).Err()
}

func facilitiesKey() string {
	return "cache:facilities"
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
