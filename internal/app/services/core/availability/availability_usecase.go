package availability

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type availabilityUsecase struct {
	Provider       contracts.FreeBusyProvider
	Limiter        *rate.Limiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

// NewAvailabilityUsecase accepts a nil provider when free/busy checks are disabled.
func NewAvailabilityUsecase(provider contracts.FreeBusyProvider, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AvailabilityUsecase {
	limit := rate.Inf
	if internalConfig.Calendar.FreeBusyMaxQueriesPerSecond > 0 {
		limit = rate.Limit(internalConfig.Calendar.FreeBusyMaxQueriesPerSecond)
	}
	return &availabilityUsecase{
		Provider:       provider,
		Limiter:        rate.NewLimiter(limit, 1),
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *availabilityUsecase) IsSlotAvailable(ctx context.Context, start, end time.Time, timezone string) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.IsSlotAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingStartKey, start),
		zap.Time(constvars.LoggingEndKey, end),
		zap.String(constvars.LoggingTimezoneKey, timezone),
	)

	if !uc.InternalConfig.Calendar.CheckFreeBusy || uc.Provider == nil {
		uc.Log.Info("availabilityUsecase.IsSlotAvailable free/busy check disabled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return true, nil
	}

	err := uc.Limiter.Wait(ctx)
	if err != nil {
		uc.Log.Error("availabilityUsecase.IsSlotAvailable error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrFreeBusyRateLimit(err)
	}

	var busyPeriods []models.BusyPeriod
	err = utils.LogOperation(uc.Log, "freebusy."+uc.Provider.Name(), requestID, func() error {
		var queryErr error
		busyPeriods, queryErr = uc.Provider.QueryBusy(ctx, uc.InternalConfig.Appointment.NotifyEmail, start, end, timezone)
		return queryErr
	})
	if err != nil {
		return false, err
	}

	available := true
	for _, period := range busyPeriods {
		if period.Overlaps(start, end) {
			available = false
			break
		}
	}

	uc.Log.Info("availabilityUsecase.IsSlotAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusyCountKey, len(busyPeriods)),
		zap.Bool(constvars.LoggingAvailableKey, available),
	)
	return available, nil
}
