package redisstore

import (
	"context"
	"testing"
	"time"

	"catalog-be/internal/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client).(*SessionRepository), mr
}

func TestSessionSaveAndGet(t *testing.T) {
	repo, mr := setupRedis(t)
	ctx := context.Background()

	session := &entity.Session{
		Token:     "abc",
		UserId:    7,
		Username:  "alice",
		Roles:     []entity.Role{entity.RoleAdmin},
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, session, time.Hour))
	assert.True(t, mr.Exists("catalog:session:abc"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserId)
	assert.Equal(t, []entity.Role{entity.RoleAdmin}, got.Roles)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionExpires(t *testing.T) {
	repo, mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "short"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionDelete(t *testing.T) {
	repo, _ := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "gone"}, time.Hour))
	require.NoError(t, repo.Delete(ctx, "gone"))

	got, err := repo.Get(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting twice is fine
	assert.NoError(t, repo.Delete(ctx, "gone"))
}

func TestSessionTakeRemoves(t *testing.T) {
	repo, mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "once", UserId: 4}, time.Hour))

	got, err := repo.Take(ctx, "once")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.UserId)
	assert.False(t, mr.Exists("catalog:session:once"))

	got, err = repo.Take(ctx, "once")
	require.NoError(t, err)
	assert.Nil(t, got)
}
