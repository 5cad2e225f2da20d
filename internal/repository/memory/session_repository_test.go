package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "t1", UserId: 1}, time.Hour))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.UserId)

	require.NoError(t, repo.Delete(ctx, "t1"))
	got, err = repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionExpires(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "t2"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	got, err := repo.Get(ctx, "t2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionTakeOnce(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "t3", UserId: 3}, time.Hour))

	var (
		wg    sync.WaitGroup
		taken atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := repo.Take(ctx, "t3")
			if err == nil && got != nil {
				taken.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), taken.Load())
	got, err := repo.Get(ctx, "t3")
	require.NoError(t, err)
	assert.Nil(t, got)
}
