package usecase

import (
	"context"
	"fmt"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/advisory"
)

// Suggest resolves the caller's window, aggregates the candidate segments in
// it and returns a ranked shortlist for the goal.
func (uc *implUseCase) Suggest(ctx context.Context, input planner.SuggestInput) (planner.SuggestOutput, error) {
	if !muhurat.ValidGoal(input.Goal) {
		return planner.SuggestOutput{}, fmt.Errorf("%w: %q", planner.ErrInvalidGoal, input.Goal)
	}

	win, err := uc.resolveWindow(ctx, input)
	if err != nil {
		return planner.SuggestOutput{}, err
	}

	segments, timedOut, err := uc.collectSegments(ctx, input, win)
	if err != nil {
		return planner.SuggestOutput{}, err
	}

	candidates := filterDaySegments(segments, win.Start, win.End)
	results := rankSegments(candidates, input.Goal, win.Start, input.IncludeAvoid, input.Limit)
	uc.attachAdvisory(ctx, input, win, results)

	return planner.SuggestOutput{
		Results:  results,
		Window:   win,
		TimedOut: timedOut,
	}, nil
}

// collectSegments gathers every segment covering the window's dates: through
// the provider-backed range when coordinates are known, otherwise from
// caller-entered manual sun times.
func (uc *implUseCase) collectSegments(ctx context.Context, input planner.SuggestInput, win planner.ResolvedWindow) ([]planner.DaySegment, bool, error) {
	if input.Coords != nil {
		out, err := uc.ComputeRange(ctx, planner.RangeInput{
			Coords:    *input.Coords,
			Timezone:  input.Timezone,
			StartDate: coverageStartDate(win),
			EndDate:   win.EndDate,
		})
		if err != nil {
			return nil, false, err
		}
		return out.Segments, out.TimedOut, nil
	}

	if input.Manual != nil {
		day, err := uc.ManualDay(ctx, *input.Manual)
		if err != nil {
			return nil, false, err
		}
		return day.Segments, false, nil
	}

	return nil, false, fmt.Errorf("%w: provide coordinates or manual sun times", planner.ErrCoordinatesRequired)
}

// coverageStartDate widens the fetched range by one day for windows that can
// open before the start date's sunrise: instants in [midnight, sunrise)
// belong to the previous day's night half, so that day must be computed too.
// Day and night windows open at sunrise/sunset and never reach back.
func coverageStartDate(win planner.ResolvedWindow) string {
	switch win.Key {
	case planner.WindowDay, planner.WindowNight:
		return win.StartDate
	}
	prev, err := prevDateISO(win.StartDate)
	if err != nil {
		return win.StartDate
	}
	return prev
}

// attachAdvisory replaces the top result's static rationale with provider
// text when the advisory service answers in time. Best-effort: any failure
// leaves the static rationale in place.
func (uc *implUseCase) attachAdvisory(ctx context.Context, input planner.SuggestInput, win planner.ResolvedWindow, results []planner.Result) {
	if uc.advisor == nil || len(results) == 0 {
		return
	}

	top := &results[0]
	resp, err := uc.advisor.Explain(ctx, advisory.Request{
		City:     input.City,
		Timezone: input.Timezone,
		Date:     top.Segment.Date,
		Goal:     string(input.Goal),
		Window:   string(win.Key),
		Slot: advisory.Slot{
			Name:  string(top.Segment.Name),
			Start: top.Segment.Start,
			End:   top.Segment.End,
			Label: string(top.Segment.Label),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Suggest advisory fallback to static rationale: %v", err)
		return
	}

	top.Why = resp.Why
	top.Extra = resp.Extra
}
