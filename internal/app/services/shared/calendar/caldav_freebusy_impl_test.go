package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCalendarQuerier struct {
	mock.Mock
}

func (m *mockCalendarQuerier) QueryCalendar(ctx context.Context, calendar string, query *caldav.CalendarQuery) ([]caldav.CalendarObject, error) {
	args := m.Called(ctx, calendar, query)
	objects, _ := args.Get(0).([]caldav.CalendarObject)
	return objects, args.Error(1)
}

func newEventObject(start, end time.Time, props map[string]string) caldav.CalendarObject {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, "event-1")
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	if !end.IsZero() {
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
	}
	for name, value := range props {
		event.Props.SetText(name, value)
	}

	cal := ical.NewCalendar()
	cal.Children = append(cal.Children, event.Component)
	return caldav.CalendarObject{Path: "/calendars/owner/default/event-1.ics", Data: cal}
}

func TestBusyPeriodsFromObjects(t *testing.T) {
	start := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	objects := []caldav.CalendarObject{
		newEventObject(start, end, nil),
		newEventObject(start, end, map[string]string{ical.PropStatus: "CANCELLED"}),
		newEventObject(start, end, map[string]string{ical.PropTransparency: "TRANSPARENT"}),
		newEventObject(start, time.Time{}, nil),
		{Path: "/calendars/owner/default/empty.ics"},
	}

	busy := busyPeriodsFromObjects(objects, start, end, time.UTC)

	require.Len(t, busy, 1)
	assert.True(t, busy[0].Start.Equal(start))
	assert.True(t, busy[0].End.Equal(end))
}

func setRawProp(component *ical.Component, name, value string) {
	prop := ical.NewProp(name)
	prop.Value = value
	component.Props.Set(prop)
}

func newRawEvent(uid string, props map[string]string) *ical.Component {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	for name, value := range props {
		setRawProp(event.Component, name, value)
	}
	return event.Component
}

func newCalendarObject(components ...*ical.Component) caldav.CalendarObject {
	cal := ical.NewCalendar()
	cal.Children = append(cal.Children, components...)
	return caldav.CalendarObject{Path: "/calendars/owner/default/series.ics", Data: cal}
}

func TestBusyPeriodsFromObjectsRecurring(t *testing.T) {
	queryStart := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)
	queryEnd := queryStart.Add(30 * time.Minute)

	weekly := map[string]string{
		ical.PropDateTimeStart:  "20240603T150000Z",
		ical.PropDateTimeEnd:    "20240603T160000Z",
		ical.PropRecurrenceRule: "FREQ=WEEKLY",
	}

	t.Run("later occurrence is busy", func(t *testing.T) {
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("weekly", weekly))}

		busy := busyPeriodsFromObjects(objects, queryStart, queryEnd, time.UTC)

		require.Len(t, busy, 1)
		assert.True(t, busy[0].Start.Equal(queryStart))
		assert.True(t, busy[0].End.Equal(queryStart.Add(time.Hour)))
		assert.True(t, busy[0].Overlaps(queryStart, queryEnd))
	})

	t.Run("occurrence still running at window start is busy", func(t *testing.T) {
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("weekly", weekly))}
		start := queryStart.Add(45 * time.Minute)

		busy := busyPeriodsFromObjects(objects, start, start.Add(30*time.Minute), time.UTC)

		require.Len(t, busy, 1)
		assert.True(t, busy[0].Overlaps(start, start.Add(30*time.Minute)))
	})

	t.Run("excluded date is free", func(t *testing.T) {
		props := map[string]string{ical.PropExceptionDates: "20240617T150000Z"}
		for name, value := range weekly {
			props[name] = value
		}
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("weekly", props))}

		busy := busyPeriodsFromObjects(objects, queryStart, queryEnd, time.UTC)

		assert.Empty(t, busy)
	})

	t.Run("moved occurrence uses the override", func(t *testing.T) {
		override := newRawEvent("weekly", map[string]string{
			ical.PropRecurrenceID:  "20240617T150000Z",
			ical.PropDateTimeStart: "20240617T180000Z",
			ical.PropDateTimeEnd:   "20240617T190000Z",
		})
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("weekly", weekly), override)}
		windowEnd := queryStart.Add(5 * time.Hour)

		busy := busyPeriodsFromObjects(objects, queryStart, windowEnd, time.UTC)

		require.Len(t, busy, 1)
		assert.True(t, busy[0].Start.Equal(time.Date(2024, 6, 17, 18, 0, 0, 0, time.UTC)))
		assert.False(t, busy[0].Overlaps(queryStart, queryEnd))
	})

	t.Run("cancelled occurrence is free", func(t *testing.T) {
		override := newRawEvent("weekly", map[string]string{
			ical.PropRecurrenceID:  "20240617T150000Z",
			ical.PropDateTimeStart: "20240617T150000Z",
			ical.PropDateTimeEnd:   "20240617T160000Z",
			ical.PropStatus:        "CANCELLED",
		})
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("weekly", weekly), override)}

		busy := busyPeriodsFromObjects(objects, queryStart, queryEnd, time.UTC)

		assert.Empty(t, busy)
	})
}

func TestBusyPeriodsFromObjectsFloatingTimes(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	slotStart := time.Date(2024, 6, 17, 11, 30, 0, 0, newYork)
	slotEnd := slotStart.Add(30 * time.Minute)

	t.Run("floating date-time is read in the query zone", func(t *testing.T) {
		objects := []caldav.CalendarObject{newCalendarObject(newRawEvent("floating", map[string]string{
			ical.PropDateTimeStart: "20240617T113000",
			ical.PropDateTimeEnd:   "20240617T123000",
		}))}

		busy := busyPeriodsFromObjects(objects, slotStart, slotEnd, newYork)

		require.Len(t, busy, 1)
		assert.True(t, busy[0].Start.Equal(slotStart))
		assert.True(t, busy[0].Overlaps(slotStart, slotEnd))
	})

	t.Run("all-day event covers the local day", func(t *testing.T) {
		allDay := newRawEvent("all-day", map[string]string{ical.PropDateTimeStart: "20240617"})
		allDay.Props.Get(ical.PropDateTimeStart).SetValueType(ical.ValueDate)
		objects := []caldav.CalendarObject{newCalendarObject(allDay)}
		lateEvening := time.Date(2024, 6, 17, 22, 0, 0, 0, newYork)

		busy := busyPeriodsFromObjects(objects, lateEvening, lateEvening.Add(30*time.Minute), newYork)

		require.Len(t, busy, 1)
		assert.True(t, busy[0].Start.Equal(time.Date(2024, 6, 17, 0, 0, 0, 0, newYork)))
		assert.True(t, busy[0].Overlaps(lateEvening, lateEvening.Add(30*time.Minute)))
	})
}

func TestCalDAVQueryBusyRecurringInUserZone(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	start := time.Date(2024, 6, 17, 11, 30, 0, 0, newYork)
	end := start.Add(30 * time.Minute)

	querier := new(mockCalendarQuerier)
	querier.On("QueryCalendar", mock.Anything, "/calendars/owner/default/", mock.Anything).Return([]caldav.CalendarObject{
		newCalendarObject(newRawEvent("weekly-floating", map[string]string{
			ical.PropDateTimeStart:  "20240603T113000",
			ical.PropDateTimeEnd:    "20240603T123000",
			ical.PropRecurrenceRule: "FREQ=WEEKLY",
		})),
	}, nil)

	provider := NewCalDAVFreeBusyProvider(querier, "/calendars/owner/default/", zap.NewNop())
	busy, err := provider.QueryBusy(context.Background(), "owner@example.com", start, end, "America/New_York")

	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.True(t, busy[0].Overlaps(start, end))
	querier.AssertExpectations(t)
}

func TestCalDAVQueryBusyInvalidTimezone(t *testing.T) {
	querier := new(mockCalendarQuerier)
	provider := NewCalDAVFreeBusyProvider(querier, "/calendars/owner/default/", zap.NewNop())
	start := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)

	_, err := provider.QueryBusy(context.Background(), "owner@example.com", start, start.Add(time.Hour), "Mars/Olympus_Mons")

	require.Error(t, err)
	querier.AssertNotCalled(t, "QueryCalendar", mock.Anything, mock.Anything, mock.Anything)
}

func TestCalDAVQueryBusy(t *testing.T) {
	start := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	querier := new(mockCalendarQuerier)
	querier.On("QueryCalendar", mock.Anything, "/calendars/owner/default/", mock.MatchedBy(func(query *caldav.CalendarQuery) bool {
		return len(query.CompFilter.Comps) == 1 &&
			query.CompFilter.Comps[0].Name == ical.CompEvent &&
			query.CompFilter.Comps[0].Start.Equal(start) &&
			query.CompFilter.Comps[0].End.Equal(end)
	})).Return([]caldav.CalendarObject{newEventObject(start.Add(-time.Hour), start.Add(15*time.Minute), nil)}, nil)

	provider := NewCalDAVFreeBusyProvider(querier, "/calendars/owner/default/", zap.NewNop())
	busy, err := provider.QueryBusy(context.Background(), "owner@example.com", start, end, "UTC")

	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.True(t, busy[0].Overlaps(start, end))
	querier.AssertExpectations(t)
}

func TestCalDAVQueryBusyError(t *testing.T) {
	querier := new(mockCalendarQuerier)
	querier.On("QueryCalendar", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	provider := NewCalDAVFreeBusyProvider(querier, "/calendars/owner/default/", zap.NewNop())
	start := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)
	_, err := provider.QueryBusy(context.Background(), "owner@example.com", start, start.Add(time.Hour), "UTC")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
