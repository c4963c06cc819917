package calendar

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"go.uber.org/zap"
)

// CalendarQuerier is the part of the CalDAV client the provider needs.
type CalendarQuerier interface {
	QueryCalendar(ctx context.Context, calendar string, query *caldav.CalendarQuery) ([]caldav.CalendarObject, error)
}

type caldavFreeBusyProvider struct {
	Client       CalendarQuerier
	CalendarPath string
	Log          *zap.Logger
}

func NewCalDAVFreeBusyProvider(client CalendarQuerier, calendarPath string, logger *zap.Logger) contracts.FreeBusyProvider {
	return &caldavFreeBusyProvider{
		Client:       client,
		CalendarPath: calendarPath,
		Log:          logger,
	}
}

func (p *caldavFreeBusyProvider) Name() string {
	return constvars.CalendarProviderCalDAV
}

// QueryBusy reads the events of the configured calendar collection. The
// calendarID is only logged, CalDAV addresses calendars by path.
func (p *caldavFreeBusyProvider) QueryBusy(ctx context.Context, calendarID string, start, end time.Time, timezone string) ([]models.BusyPeriod, error) {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("caldavFreeBusyProvider.QueryBusy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, p.CalendarPath),
		zap.Time(constvars.LoggingStartKey, start),
		zap.Time(constvars.LoggingEndKey, end),
	)

	location, err := utils.LoadUserLocation(timezone)
	if err != nil {
		return nil, err
	}

	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: ical.CompCalendar,
			Comps: []caldav.CalendarCompRequest{{
				Name:  ical.CompEvent,
				Props: []string{
					ical.PropUID,
					ical.PropDateTimeStart,
					ical.PropDateTimeEnd,
					ical.PropDuration,
					ical.PropStatus,
					ical.PropTransparency,
					ical.PropRecurrenceRule,
					ical.PropRecurrenceDates,
					ical.PropExceptionDates,
					ical.PropRecurrenceID,
				},
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: ical.CompCalendar,
			Comps: []caldav.CompFilter{{
				Name:  ical.CompEvent,
				Start: start.UTC(),
				End:   end.UTC(),
			}},
		},
	}

	objects, err := p.Client.QueryCalendar(ctx, p.CalendarPath, query)
	if err != nil {
		p.Log.Error("caldavFreeBusyProvider.QueryBusy error querying calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, calendarID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFreeBusyQuery(err, p.Name())
	}

	busyPeriods := busyPeriodsFromObjects(objects, start, end, location)

	p.Log.Info("caldavFreeBusyProvider.QueryBusy succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusyCountKey, len(busyPeriods)),
	)
	return busyPeriods, nil
}

// busyPeriodsFromObjects turns VEVENTs into busy periods. Recurring masters
// are expanded to the occurrences that overlap [start, end), and overridden
// occurrences are taken from their RECURRENCE-ID components. Floating and
// date-only values are read in loc.
func busyPeriodsFromObjects(objects []caldav.CalendarObject, start, end time.Time, loc *time.Location) []models.BusyPeriod {
	var busyPeriods []models.BusyPeriod
	for _, object := range objects {
		if object.Data == nil {
			continue
		}

		overridden := make(map[string]map[int64]bool)
		for _, component := range object.Data.Component.Children {
			if component.Name != ical.CompEvent || component.Props.Get(ical.PropRecurrenceID) == nil {
				continue
			}
			recurrenceID, err := component.Props.DateTime(ical.PropRecurrenceID, loc)
			if err != nil {
				continue
			}
			uid := getTextProp(component.Props, ical.PropUID)
			if overridden[uid] == nil {
				overridden[uid] = make(map[int64]bool)
			}
			overridden[uid][recurrenceID.Unix()] = true
		}

		for _, component := range object.Data.Component.Children {
			if component.Name != ical.CompEvent {
				continue
			}
			period, ok := busyPeriodFromEvent(component, loc)
			if !ok {
				continue
			}
			if component.Props.Get(ical.PropRecurrenceRule) == nil || component.Props.Get(ical.PropRecurrenceID) != nil {
				busyPeriods = append(busyPeriods, period)
				continue
			}
			busyPeriods = append(busyPeriods, expandOccurrences(component, period, start, end, loc, overridden[getTextProp(component.Props, ical.PropUID)])...)
		}
	}
	return busyPeriods
}

// expandOccurrences emits one period per occurrence of a recurring master
// that overlaps [start, end). A broken RRULE falls back to the master period.
func expandOccurrences(component *ical.Component, master models.BusyPeriod, start, end time.Time, loc *time.Location, skip map[int64]bool) []models.BusyPeriod {
	set, err := component.RecurrenceSet(loc)
	if err != nil || set == nil {
		return []models.BusyPeriod{master}
	}

	duration := master.End.Sub(master.Start)
	var periods []models.BusyPeriod
	for _, occurrence := range set.Between(start.Add(-duration), end, false) {
		if skip[occurrence.Unix()] {
			continue
		}
		periods = append(periods, models.BusyPeriod{Start: occurrence, End: occurrence.Add(duration)})
	}
	return periods
}

func busyPeriodFromEvent(component *ical.Component, loc *time.Location) (models.BusyPeriod, bool) {
	if strings.EqualFold(getTextProp(component.Props, ical.PropStatus), "CANCELLED") {
		return models.BusyPeriod{}, false
	}
	if strings.EqualFold(getTextProp(component.Props, ical.PropTransparency), "TRANSPARENT") {
		return models.BusyPeriod{}, false
	}

	start, err := component.Props.DateTime(ical.PropDateTimeStart, loc)
	if err != nil || start.IsZero() {
		return models.BusyPeriod{}, false
	}

	end, err := component.Props.DateTime(ical.PropDateTimeEnd, loc)
	if err != nil {
		return models.BusyPeriod{}, false
	}
	if end.IsZero() {
		end = fallbackEnd(component, start)
	}
	if !end.After(start) {
		return models.BusyPeriod{}, false
	}

	return models.BusyPeriod{Start: start, End: end}, true
}

// fallbackEnd follows RFC 5545: DURATION when present, otherwise one day for
// date-only events and zero length for the rest.
func fallbackEnd(component *ical.Component, start time.Time) time.Time {
	if prop := component.Props.Get(ical.PropDuration); prop != nil {
		if duration, err := prop.Duration(); err == nil {
			return start.Add(duration)
		}
	}
	if prop := component.Props.Get(ical.PropDateTimeStart); prop != nil && prop.ValueType() == ical.ValueDate {
		return start.AddDate(0, 0, 1)
	}
	return start
}

func getTextProp(props ical.Props, name string) string {
	prop := props.Get(name)
	if prop == nil {
		return ""
	}
	return prop.Value
}
