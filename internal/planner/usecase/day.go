package usecase

import (
	"context"
	"fmt"
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/suntimes"
	"muhurat-planner/pkg/tzdate"
)

// Day computes the 16 segments of one civil day from provider sun times.
func (uc *implUseCase) Day(ctx context.Context, input planner.DayInput) (planner.DayOutput, error) {
	date := input.Date
	if date == "" {
		var err error
		date, err = tzdate.LocalDateAt(uc.now(), input.Timezone)
		if err != nil {
			return planner.DayOutput{}, err
		}
	}

	times, err := uc.repo.SunTimes(ctx, input.Coords.Lat, input.Coords.Lon, date, input.Timezone)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Day SunTimes: %v", err)
		return planner.DayOutput{}, err
	}

	return uc.buildDay(ctx, date, input.Timezone, times)
}

// ManualDay computes the segments from caller-entered wall-clock sun times.
// This is the fallback when the provider reports polar unavailability for a
// date/location.
func (uc *implUseCase) ManualDay(ctx context.Context, input planner.ManualDayInput) (planner.DayOutput, error) {
	if input.SunriseClock == "" || input.SunsetClock == "" || input.NextSunriseClock == "" {
		return planner.DayOutput{}, planner.ErrManualTimesInvalid
	}

	sunrise, err := tzdate.WallClockToInstant(input.Date, input.SunriseClock, input.Timezone)
	if err != nil {
		return planner.DayOutput{}, fmt.Errorf("%w: %v", planner.ErrManualTimesInvalid, err)
	}
	sunset, err := tzdate.WallClockToInstant(input.Date, input.SunsetClock, input.Timezone)
	if err != nil {
		return planner.DayOutput{}, fmt.Errorf("%w: %v", planner.ErrManualTimesInvalid, err)
	}

	nextDate, err := nextDateISO(input.Date)
	if err != nil {
		return planner.DayOutput{}, fmt.Errorf("%w: %v", planner.ErrInvalidDate, err)
	}
	nextSunrise, err := tzdate.WallClockToInstant(nextDate, input.NextSunriseClock, input.Timezone)
	if err != nil {
		return planner.DayOutput{}, fmt.Errorf("%w: %v", planner.ErrManualTimesInvalid, err)
	}

	if !sunrise.Before(sunset) || !sunset.Before(nextSunrise) {
		return planner.DayOutput{}, planner.ErrManualTimesInvalid
	}

	return uc.buildDay(ctx, input.Date, input.Timezone, suntimes.Times{
		Sunrise:     sunrise,
		Sunset:      sunset,
		NextSunrise: nextSunrise,
	})
}

// buildDay turns one day's sun times into tagged segments plus the current
// and next-good slots relative to now.
func (uc *implUseCase) buildDay(ctx context.Context, date, timezone string, times suntimes.Times) (planner.DayOutput, error) {
	weekday, err := tzdate.WeekdayFor(times.Sunrise, timezone)
	if err != nil {
		return planner.DayOutput{}, err
	}

	segments := muhurat.Compute(times.Sunrise, times.Sunset, times.NextSunrise, weekday)
	tagged := tagSegments(segments, date)

	out := planner.DayOutput{
		Date:     date,
		Segments: tagged,
	}

	now := uc.now()
	if current, ok := muhurat.Current(segments, now); ok {
		seg := planner.DaySegment{Segment: current, Date: date}
		out.Current = &seg
	}
	if next, ok := muhurat.NextGood(segments, now); ok {
		seg := planner.DaySegment{Segment: next, Date: date}
		out.NextGood = &seg
	}

	return out, nil
}

func nextDateISO(dateISO string) (string, error) {
	d, err := time.Parse(tzdate.DateFormatISO, dateISO)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, 1).Format(tzdate.DateFormatISO), nil
}
