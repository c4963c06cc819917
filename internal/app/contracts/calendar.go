package contracts

import (
	"appointment-skill/internal/app/models"
	"context"
	"time"
)

type FreeBusyProvider interface {
	Name() string
	QueryBusy(ctx context.Context, calendarID string, start, end time.Time, timezone string) ([]models.BusyPeriod, error)
}

type AvailabilityUsecase interface {
	IsSlotAvailable(ctx context.Context, start, end time.Time, timezone string) (bool, error)
}
