package contract

import (
	"context"
	"time"

	"catalog-be/internal/entity"
)

// SessionRepository stores refresh-token sessions. Get and Take return nil,
// nil for an unknown or expired token. Take removes the session in the same
// step, so of several concurrent callers at most one gets it.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*entity.Session, error)
	Take(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}
