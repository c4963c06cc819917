package calendar

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
)

type googleFreeBusyProvider struct {
	Service *calendar.Service
	Log     *zap.Logger
}

func NewGoogleFreeBusyProvider(service *calendar.Service, logger *zap.Logger) contracts.FreeBusyProvider {
	return &googleFreeBusyProvider{
		Service: service,
		Log:     logger,
	}
}

func (p *googleFreeBusyProvider) Name() string {
	return constvars.CalendarProviderGoogle
}

func (p *googleFreeBusyProvider) QueryBusy(ctx context.Context, calendarID string, start, end time.Time, timezone string) ([]models.BusyPeriod, error) {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("googleFreeBusyProvider.QueryBusy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingStartKey, start),
		zap.Time(constvars.LoggingEndKey, end),
		zap.String(constvars.LoggingTimezoneKey, timezone),
	)

	request := &calendar.FreeBusyRequest{
		TimeMin:  start.UTC().Format(time.RFC3339),
		TimeMax:  end.UTC().Format(time.RFC3339),
		TimeZone: timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	response, err := p.Service.Freebusy.Query(request).Context(ctx).Do()
	if err != nil {
		p.Log.Error("googleFreeBusyProvider.QueryBusy error querying free/busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFreeBusyQuery(err, p.Name())
	}

	busyCalendar, ok := response.Calendars[calendarID]
	if !ok {
		p.Log.Error("googleFreeBusyProvider.QueryBusy calendar missing from response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrFreeBusyCalendarMissing(calendarID)
	}
	if len(busyCalendar.Errors) > 0 {
		calendarErr := fmt.Errorf("%s: %s", busyCalendar.Errors[0].Domain, busyCalendar.Errors[0].Reason)
		p.Log.Error("googleFreeBusyProvider.QueryBusy calendar returned errors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(calendarErr),
		)
		return nil, exceptions.ErrFreeBusyQuery(calendarErr, p.Name())
	}

	busyPeriods := make([]models.BusyPeriod, 0, len(busyCalendar.Busy))
	for _, period := range busyCalendar.Busy {
		busyStart, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, p.Name())
		}
		busyEnd, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, p.Name())
		}
		busyPeriods = append(busyPeriods, models.BusyPeriod{Start: busyStart, End: busyEnd})
	}

	p.Log.Info("googleFreeBusyProvider.QueryBusy succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusyCountKey, len(busyPeriods)),
	)
	return busyPeriods, nil
}
