package contracts

import (
	"appointment-skill/internal/app/models"
	"context"
)

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, limit *models.ResourceLimit) (*models.ResourceLimitDecision, error)
}
