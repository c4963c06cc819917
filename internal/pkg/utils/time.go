package utils

import (
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"strings"
	"time"
)

// LoadUserLocation resolves an IANA zone name. An unset zone means UTC.
func LoadUserLocation(timezone string) (*time.Location, error) {
	if strings.TrimSpace(timezone) == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, exceptions.ErrInvalidTimezone(err, timezone)
	}
	return location, nil
}

// ParseAppointmentDateTime combines a YYYY-MM-DD date slot with an HH:MM or
// HH:MM:SS time slot as wall-clock time in location. Seconds are dropped.
func ParseAppointmentDateTime(date, clock string, location *time.Location) (time.Time, error) {
	day, err := time.Parse(constvars.SlotDateLayout, date)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err, date)
	}

	timeOfDay, err := time.Parse(constvars.SlotTimeLayout, clock)
	if err != nil {
		var secondsErr error
		timeOfDay, secondsErr = time.Parse(constvars.SlotTimeWithSecondsLayout, clock)
		if secondsErr != nil {
			return time.Time{}, exceptions.ErrCannotParseTime(err, clock)
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, location), nil
}

// SpeakableDateTime formats t with layout, or the US English layout when it
// is empty. Complete weekday (Sunday first) and month name lists replace the
// English names Format produces.
func SpeakableDateTime(t time.Time, layout string, weekdays, months []string) string {
	if layout == "" {
		layout = constvars.SpeakableDateTimeLayout
	}
	formatted := t.Format(layout)
	if len(weekdays) != 7 || len(months) != 12 {
		return formatted
	}

	pairs := make([]string, 0, 2*(len(weekdays)+len(months)))
	for i, name := range weekdays {
		pairs = append(pairs, time.Weekday(i).String(), strings.TrimSpace(name))
	}
	for i, name := range months {
		pairs = append(pairs, time.Month(i+1).String(), strings.TrimSpace(name))
	}
	return strings.NewReplacer(pairs...).Replace(formatted)
}
