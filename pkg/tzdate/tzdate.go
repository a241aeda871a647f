package tzdate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange reports a date range whose end precedes its start.
var ErrInvalidRange = errors.New("invalid date range")

// Date and wall-clock formats used across the service.
const (
	DateFormatISO = "2006-01-02"
	ClockFormat   = "15:04"
)

// Convergence bounds for WallClockToInstant. DST offsets are piecewise
// constant, so the fixed-point loop settles in one or two rounds.
const (
	maxOffsetIterations  = 3
	convergenceTolerance = time.Second
)

// WeekdayFor resolves the civil weekday (0 = Sunday) of an instant as
// observed in the given IANA timezone. Never derived from a fixed UTC
// offset: timezones shift across DST transitions.
func WeekdayFor(t time.Time, timezone string) (int, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return int(t.In(loc).Weekday()), nil
}

// LocalDate returns today's civil date in YYYY-MM-DD as observed in the
// timezone.
func LocalDate(timezone string) (string, error) {
	return LocalDateAt(time.Now(), timezone)
}

// LocalDateAt returns the civil date of an instant in YYYY-MM-DD as observed
// in the timezone.
func LocalDateAt(t time.Time, timezone string) (string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return t.In(loc).Format(DateFormatISO), nil
}

// OffsetMinutes returns the timezone's UTC offset, in minutes, in effect at
// the given instant. Positive east of UTC.
func OffsetMinutes(t time.Time, timezone string) (int, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return offsetMinutes(t, loc), nil
}

// offsetMinutes formats the instant's wall-clock fields in loc, reinterprets
// those fields as UTC and returns the difference from the original instant.
// This is the primitive the WallClockToInstant convergence loop rests on.
func offsetMinutes(t time.Time, loc *time.Location) int {
	wall := t.In(loc)
	asUTC := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC)
	return int(asUTC.Sub(t.Truncate(time.Second)) / time.Minute)
}

// WallClockToInstant converts a local wall-clock reading ("2026-06-15",
// "19:00") in the given timezone to the UTC instant it denotes.
//
// The timezone's offset depends on the instant, and the instant depends on
// the offset, so the conversion runs a bounded fixed-point iteration: start
// from a naive UTC reading of the fields, look up that candidate's actual
// offset, recompute, and stop once two successive candidates agree within a
// second. A wall-clock time skipped by a spring-forward transition resolves
// to whichever offset the last iteration lands on.
func WallClockToInstant(dateISO, clock, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	naive, err := time.Parse(DateFormatISO+" "+ClockFormat, dateISO+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid wall-clock value %q %q: %w", dateISO, clock, err)
	}

	candidate := naive // first guess: fields read as UTC
	for i := 0; i < maxOffsetIterations; i++ {
		offset := offsetMinutes(candidate, loc)
		next := naive.Add(-time.Duration(offset) * time.Minute)

		if absDuration(next.Sub(candidate)) <= convergenceTolerance {
			return next, nil
		}
		candidate = next
	}
	return candidate, nil
}

// StartOfDay returns midnight at the start of the given civil date in the
// timezone.
func StartOfDay(dateISO, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	d, err := time.ParseInLocation(DateFormatISO, dateISO, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}
	return d, nil
}

// ISOWeekEnd returns the end of the ISO week containing the date: the Sunday
// on or after it, at 23:59 local time.
func ISOWeekEnd(dateISO, timezone string) (time.Time, error) {
	day, err := StartOfDay(dateISO, timezone)
	if err != nil {
		return time.Time{}, err
	}

	daysUntilSunday := (7 - int(day.Weekday())) % 7
	sunday := day.AddDate(0, 0, daysUntilSunday)
	return endOfDay(sunday), nil
}

// MonthEnd returns the last calendar day of the date's month at 23:59 local
// time.
func MonthEnd(dateISO, timezone string) (time.Time, error) {
	day, err := StartOfDay(dateISO, timezone)
	if err != nil {
		return time.Time{}, err
	}

	firstOfNext := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return endOfDay(lastDay), nil
}

// endOfDay pins 23:59 by wall clock. Adding a 23h59m duration instead would
// drift across DST transition days, where the civil day is 23 or 25 hours.
func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, day.Location())
}

// DateRange enumerates the calendar dates from startISO to endISO inclusive,
// in ascending order.
func DateRange(startISO, endISO string) ([]string, error) {
	start, err := time.Parse(DateFormatISO, startISO)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startISO, err)
	}
	end, err := time.Parse(DateFormatISO, endISO)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endISO, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %q before start %q", ErrInvalidRange, endISO, startISO)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateFormatISO))
	}
	return dates, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
