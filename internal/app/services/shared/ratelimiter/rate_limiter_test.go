package ratelimiter

import (
	"appointment-skill/internal/app/models"
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
	return m.Called(ctx, key).Error(0)
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

func newTestLimiter(repo *mockRedisRepository, now time.Time) *resourceLimiter {
	limiter := NewResourceLimiter(repo, zap.NewNop()).(*resourceLimiter)
	limiter.Now = func() time.Time { return now }
	return limiter
}

func TestApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	// 2024-06-10T09:00:00Z, window id 19884 for a one day window
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	limit := &models.ResourceLimit{
		ResourceName:     " amzn1.ask.account.AEZ7Q ",
		LimiterGroupName: "booking-quota",
		Window:           24 * time.Hour,
		MaxQuota:         2,
	}
	expectedKey := "BOOKING-QUOTA:amzn1.ask.account.AEZ7Q:19884"

	t.Run("within quota", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 24*time.Hour+time.Second).Return(2, nil)

		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, limit)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		repo.AssertExpectations(t)
	})

	t.Run("ids differing only in case count separately", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("IncrementWithTTL", ctx, "BOOKING-QUOTA:amzn1.ask.account.aez7q:19884", mock.Anything).Return(1, nil)

		other := *limit
		other.ResourceName = "amzn1.ask.account.aez7q"
		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, &other)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "IncrementWithTTL", ctx, expectedKey, mock.Anything)
	})

	t.Run("over quota reports retry after", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, mock.Anything).Return(3, nil)

		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, limit)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 15*time.Hour, decision.RetryAfter)
	})

	t.Run("disabled quota skips redis", func(t *testing.T) {
		repo := new(mockRedisRepository)

		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, &models.ResourceLimit{ResourceName: "a", LimiterGroupName: "g"})
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing resource is denied", func(t *testing.T) {
		repo := new(mockRedisRepository)

		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, &models.ResourceLimit{LimiterGroupName: "g", MaxQuota: 1, Window: time.Hour})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, time.Hour, decision.RetryAfter)
	})

	t.Run("redis error", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, mock.Anything).Return(0, errors.New("connection refused"))

		decision, err := newTestLimiter(repo, now).ApplyResourceLimiter(ctx, limit)
		assert.Error(t, err)
		assert.Nil(t, decision)
	})
}
