package ratelimiter

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type resourceLimiter struct {
	Redis contracts.RedisRepository
	Log   *zap.Logger
	Now   func() time.Time
}

// NewResourceLimiter returns a fixed-window limiter. Counters live in Redis
// under GROUP:resource:windowID and expire one second after their window.
func NewResourceLimiter(redis contracts.RedisRepository, logger *zap.Logger) contracts.ResourceLimiter {
	return &resourceLimiter{
		Redis: redis,
		Log:   logger,
		Now:   time.Now,
	}
}

func (l *resourceLimiter) ApplyResourceLimiter(ctx context.Context, limit *models.ResourceLimit) (*models.ResourceLimitDecision, error) {
	requestID := utils.GetRequestID(ctx)

	if limit == nil || limit.MaxQuota <= 0 {
		return &models.ResourceLimitDecision{Allowed: true}, nil
	}

	// Resource names are opaque ids and keep their case.
	resource := strings.TrimSpace(limit.ResourceName)
	group := strings.ToUpper(strings.TrimSpace(limit.LimiterGroupName))
	window := limit.Window
	if window < time.Second {
		window = time.Minute
	}
	windowSec := int64(window / time.Second)

	if resource == "" || group == "" {
		return &models.ResourceLimitDecision{Allowed: false, RetryAfter: window}, nil
	}

	now := l.Now().UTC()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	count, err := l.Redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.Log.Error("resourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	if count > limit.MaxQuota {
		nextWindowStart := time.Unix((windowID+1)*windowSec, 0)
		l.Log.Info("resourceLimiter.ApplyResourceLimiter quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Int(constvars.LoggingQuotaCountKey, count),
		)
		return &models.ResourceLimitDecision{Allowed: false, RetryAfter: nextWindowStart.Sub(now)}, nil
	}

	return &models.ResourceLimitDecision{Allowed: true}, nil
}
