// Package timegrid holds the pure time arithmetic behind the weekly grid:
// mapping (day, hour, minute) slots to wall-clock instants and event time
// ranges to pixel geometry. All math is timezone-naive; instants keep the
// location of the day they were derived from.
package timegrid

import (
	"fmt"
	"time"
)

const (
	// HoursPerDay is the number of hourly rows in a day column.
	HoursPerDay = 24
	// DaysPerWeek is the number of day columns in the grid.
	DaysPerWeek = 7
	// DefaultHourPixels is the rendered height of one hour.
	DefaultHourPixels = 80.0
	// MinDisplayHours floors an event's rendered duration so short events
	// stay visible. Display only; stored end times are never adjusted.
	MinDisplayHours = 0.5
)

// InvalidTimeError reports a value that could not be interpreted as a
// date-time. Callers rendering a grid must treat it as non-fatal and skip the
// offending event.
type InvalidTimeError struct {
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time value %q", e.Value)
}

// layouts accepted when parsing client-supplied date-times, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse interprets s as a date-time. It accepts RFC 3339 (the wire format),
// a bare date, and the common unzoned variants.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &InvalidTimeError{Value: s}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidTimeError{Value: s}
}

// SlotToDateTime returns the instant at day's midnight plus hour hours and
// minute minutes, in day's own location.
func SlotToDateTime(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// DefaultEventSpan returns the end time used when the user has not chosen
// one: start plus one hour.
func DefaultEventSpan(start time.Time) time.Time {
	return start.Add(time.Hour)
}

// Extent is the vertical pixel geometry of one rendered event.
type Extent struct {
	Top    float64
	Height float64
}

// VerticalExtent computes the pixel position of an event within its day
// column at the given px/hour scale. The rendered duration is floored at
// MinDisplayHours for visibility. Zero start or end times are rejected with
// InvalidTimeError.
func VerticalExtent(start, end time.Time, scale float64) (Extent, error) {
	if start.IsZero() {
		return Extent{}, &InvalidTimeError{Value: "start time"}
	}
	if end.IsZero() {
		return Extent{}, &InvalidTimeError{Value: "end time"}
	}
	if scale <= 0 {
		scale = DefaultHourPixels
	}

	startFrac := HourFraction(start)
	duration := HourFraction(end) - startFrac
	if duration < MinDisplayHours {
		duration = MinDisplayHours
	}

	return Extent{
		Top:    startFrac * scale,
		Height: duration * scale,
	}, nil
}

// HourFraction returns the hour-of-day of t as a fraction, e.g. 9:30 -> 9.5.
func HourFraction(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// StartOfWeek returns midnight of the Sunday on or before day.
func StartOfWeek(day time.Time) time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekDays returns the seven consecutive days of the week containing day,
// starting on Sunday.
func WeekDays(day time.Time) []time.Time {
	start := StartOfWeek(day)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar date, ignoring
// the time-of-day components.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
