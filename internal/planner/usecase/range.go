package usecase

import (
	"context"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/tzdate"
)

// ComputeRange aggregates per-day segments across a contiguous date range.
//
// Days are fetched and appended in ascending calendar order, so a partial
// result is always a contiguous prefix of the range. Two cooperative stop
// conditions are checked after each day's fetch: context cancellation (a
// superseding query abandons stale work; the prefix is returned without an
// error) and the wall-clock budget (TimedOut is set so the caller can show
// partial results instead of hanging on up to ~31 sequential provider calls).
func (uc *implUseCase) ComputeRange(ctx context.Context, input planner.RangeInput) (planner.RangeOutput, error) {
	dates, err := tzdate.DateRange(input.StartDate, input.EndDate)
	if err != nil {
		return planner.RangeOutput{}, err
	}

	budget := input.Budget
	if budget <= 0 {
		budget = uc.budget
	}
	startedAt := uc.now()

	out := planner.RangeOutput{}
	for i, date := range dates {
		times, fetchErr := uc.repo.SunTimes(ctx, input.Coords.Lat, input.Coords.Lon, date, input.Timezone)

		// A fetch resolving after cancellation is discarded along with the
		// rest of the range.
		if ctx.Err() != nil {
			uc.l.Infof(ctx, "uc.ComputeRange cancelled after %d/%d days", i, len(dates))
			return out, nil
		}
		if fetchErr != nil {
			uc.l.Errorf(ctx, "uc.ComputeRange SunTimes %s: %v", date, fetchErr)
			return out, fetchErr
		}

		weekday, wdErr := tzdate.WeekdayFor(times.Sunrise, input.Timezone)
		if wdErr != nil {
			return out, wdErr
		}

		segments := muhurat.Compute(times.Sunrise, times.Sunset, times.NextSunrise, weekday)
		out.Segments = append(out.Segments, tagSegments(segments, date)...)

		if uc.now().Sub(startedAt) > budget && i < len(dates)-1 {
			uc.l.Warnf(ctx, "uc.ComputeRange budget exceeded after %d/%d days", i+1, len(dates))
			out.TimedOut = true
			break
		}
	}

	return out, nil
}
