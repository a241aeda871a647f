package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/tzdate"
)

// resolveWindow translates a window key plus "now" into a concrete
// [Start, End) pair and the calendar dates the range computation must cover.
func (uc *implUseCase) resolveWindow(ctx context.Context, input planner.SuggestInput) (planner.ResolvedWindow, error) {
	if !input.Window.Valid() {
		return planner.ResolvedWindow{}, fmt.Errorf("%w: %q", planner.ErrInvalidWindow, input.Window)
	}
	if input.Window.RequiresCoordinates() && input.Coords == nil {
		return planner.ResolvedWindow{}, fmt.Errorf("%w: %s window needs automatic sun times", planner.ErrCoordinatesRequired, input.Window)
	}

	now := uc.now()
	today, err := tzdate.LocalDateAt(now, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}

	selected := input.Date
	if selected == "" {
		selected = today
	} else if _, err := time.Parse(tzdate.DateFormatISO, selected); err != nil {
		return planner.ResolvedWindow{}, fmt.Errorf("%w: %q", planner.ErrInvalidDate, selected)
	}

	switch input.Window {
	case planner.WindowNext3h, planner.WindowNext6h:
		hours := 3
		if input.Window == planner.WindowNext6h {
			hours = 6
		}
		return uc.resolveShortWindow(input, now, today, hours)

	case planner.WindowDay, planner.WindowNight:
		return uc.resolveSunWindow(ctx, input, selected)

	case planner.WindowWeek:
		end, err := tzdate.ISOWeekEnd(selected, input.Timezone)
		if err != nil {
			return planner.ResolvedWindow{}, err
		}
		return uc.resolveLongWindow(input, now, today, selected, end)

	case planner.WindowMonth:
		end, err := tzdate.MonthEnd(selected, input.Timezone)
		if err != nil {
			return planner.ResolvedWindow{}, err
		}
		return uc.resolveLongWindow(input, now, today, selected, end)

	default: // planner.WindowCustom
		return uc.resolveCustomWindow(input)
	}
}

// resolveShortWindow handles 3h/6h: [now, now+N). Coordinates become
// mandatory only when the window crosses into the next civil day, because
// the night half then belongs to a different day's rotation.
func (uc *implUseCase) resolveShortWindow(input planner.SuggestInput, now time.Time, today string, hours int) (planner.ResolvedWindow, error) {
	end := now.Add(time.Duration(hours) * time.Hour)

	endDate, err := tzdate.LocalDateAt(end, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}
	if endDate != today && input.Coords == nil {
		return planner.ResolvedWindow{}, fmt.Errorf("%w: the %dh window crosses midnight", planner.ErrCoordinatesRequired, hours)
	}

	return planner.ResolvedWindow{
		Key:       input.Window,
		Start:     now,
		End:       end,
		StartDate: today,
		EndDate:   endDate,
	}, nil
}

// resolveSunWindow handles day ([sunrise, sunset)) and night
// ([sunset, nextSunrise)) for the selected date. Provider unavailability
// (polar dates) propagates so the caller can offer manual entry.
func (uc *implUseCase) resolveSunWindow(ctx context.Context, input planner.SuggestInput, selected string) (planner.ResolvedWindow, error) {
	times, err := uc.repo.SunTimes(ctx, input.Coords.Lat, input.Coords.Lon, selected, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}

	win := planner.ResolvedWindow{
		Key:       input.Window,
		StartDate: selected,
		EndDate:   selected,
	}
	if input.Window == planner.WindowDay {
		win.Start, win.End = times.Sunrise, times.Sunset
	} else {
		win.Start, win.End = times.Sunset, times.NextSunrise
	}
	return win, nil
}

// resolveLongWindow handles week/month: start is now when the selected date
// is today, otherwise the local start of the selected date; end is the
// period's terminal 23:59.
func (uc *implUseCase) resolveLongWindow(input planner.SuggestInput, now time.Time, today, selected string, end time.Time) (planner.ResolvedWindow, error) {
	start := now
	if selected != today {
		var err error
		start, err = tzdate.StartOfDay(selected, input.Timezone)
		if err != nil {
			return planner.ResolvedWindow{}, err
		}
	}

	endDate, err := tzdate.LocalDateAt(end, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}

	return planner.ResolvedWindow{
		Key:       input.Window,
		Start:     start,
		End:       end,
		StartDate: selected,
		EndDate:   endDate,
	}, nil
}

// resolveCustomWindow converts the caller's explicit wall-clock bounds,
// formatted "YYYY-MM-DD HH:mm" in the caller's timezone.
func (uc *implUseCase) resolveCustomWindow(input planner.SuggestInput) (planner.ResolvedWindow, error) {
	if input.CustomStart == "" || input.CustomEnd == "" {
		return planner.ResolvedWindow{}, planner.ErrCustomRangeIncomplete
	}

	start, startDate, err := parseCustomBound(input.CustomStart, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}
	end, endDate, err := parseCustomBound(input.CustomEnd, input.Timezone)
	if err != nil {
		return planner.ResolvedWindow{}, err
	}
	if !end.After(start) {
		return planner.ResolvedWindow{}, planner.ErrCustomRangeInvalid
	}

	return planner.ResolvedWindow{
		Key:       planner.WindowCustom,
		Start:     start,
		End:       end,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func parseCustomBound(value, timezone string) (time.Time, string, error) {
	parts := strings.SplitN(strings.TrimSpace(value), " ", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("%w: %q is not \"YYYY-MM-DD HH:mm\"", planner.ErrCustomRangeIncomplete, value)
	}

	instant, err := tzdate.WallClockToInstant(parts[0], parts[1], timezone)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", planner.ErrCustomRangeIncomplete, err)
	}
	return instant, parts[0], nil
}
