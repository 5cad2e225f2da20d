package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:session:"

// SessionRepository stores sessions as JSON strings with a Redis TTL, so
// several API instances can share logins.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) contract.SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, keyPrefix+session.Token, payload, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*entity.Session, error) {
	return decode(r.client.Get(ctx, keyPrefix+token).Bytes())
}

// Take reads and removes the session with a single GETDEL.
func (r *SessionRepository) Take(ctx context.Context, token string) (*entity.Session, error) {
	return decode(r.client.GetDel(ctx, keyPrefix+token).Bytes())
}

func decode(payload []byte, err error) (*entity.Session, error) {
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, keyPrefix+token).Err()
}
