package calendar

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	calendarDriver "appointment-skill/internal/app/drivers/calendar"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NewFreeBusyProvider builds the provider named by CALENDAR_PROVIDER.
func NewFreeBusyProvider(ctx context.Context, internalConfig *config.InternalConfig, driverConfig *config.DriverConfig, logger *zap.Logger) (contracts.FreeBusyProvider, error) {
	provider := strings.ToLower(strings.TrimSpace(internalConfig.Calendar.Provider))
	switch provider {
	case "", constvars.CalendarProviderGoogle:
		service, err := calendarDriver.NewGoogleCalendarService(ctx, driverConfig, logger)
		if err != nil {
			return nil, err
		}
		return NewGoogleFreeBusyProvider(service, logger), nil
	case constvars.CalendarProviderCalDAV:
		httpClient := &http.Client{Timeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second}
		client, err := calendarDriver.NewCalDAVClient(driverConfig, httpClient, logger)
		if err != nil {
			return nil, err
		}
		return NewCalDAVFreeBusyProvider(client, internalConfig.Calendar.CalDAVCalendarPath, logger), nil
	default:
		return nil, exceptions.ErrUnknownCalendarProvider(provider)
	}
}
