package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("TrySetNX", ctx, "booking:lock:req-1", mock.AnythingOfType("string"), time.Minute).Return(true, nil)
		service := NewLockService(repo, zap.NewNop())

		acquired, lockValue, err := service.TryLock(ctx, "booking:lock:req-1", time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)
		repo.AssertExpectations(t)
	})

	t.Run("already held", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("TrySetNX", ctx, "booking:lock:req-1", mock.Anything, time.Minute).Return(false, nil)
		service := NewLockService(repo, zap.NewNop())

		acquired, lockValue, err := service.TryLock(ctx, "booking:lock:req-1", time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("redis error", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("TrySetNX", ctx, "booking:lock:req-1", mock.Anything, time.Minute).Return(false, errors.New("connection refused"))
		service := NewLockService(repo, zap.NewNop())

		acquired, _, err := service.TryLock(ctx, "booking:lock:req-1", time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owned lock is deleted", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "key").Return(`"owner"`, nil)
		repo.On("Delete", ctx, "key").Return(nil)
		service := NewLockService(repo, zap.NewNop())

		err := service.Unlock(ctx, "key", "owner")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("foreign lock is kept", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "key").Return(`"someone-else"`, nil)
		service := NewLockService(repo, zap.NewNop())

		err := service.Unlock(ctx, "key", "owner")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", ctx, "key")
	})

	t.Run("missing lock is a no-op", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "key").Return("", nil)
		service := NewLockService(repo, zap.NewNop())

		assert.NoError(t, service.Unlock(ctx, "key", "owner"))
	})
}
