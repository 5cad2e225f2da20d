package memory

import (
	"context"
	"sync"
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps refresh-token sessions in process memory. Sessions
// are lost on restart, which only forces users to log in again.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository(defaultTTL time.Duration) contract.SessionRepository {
	c := cache.New(defaultTTL, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	r.cache.Set(session.Token, session, ttl)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*entity.Session, error) {
	if x, found := r.cache.Get(token); found {
		return x.(*entity.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Take(ctx context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	x, found := r.cache.Get(token)
	if !found {
		return nil, nil
	}
	r.cache.Delete(token)
	return x.(*entity.Session), nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.cache.Delete(token)
	return nil
}
