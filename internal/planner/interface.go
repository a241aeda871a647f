package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Day computes the 16 segments of a civil day from provider sun times.
	Day(ctx context.Context, input DayInput) (DayOutput, error)

	// ManualDay computes the segments from caller-entered wall-clock sun
	// times, the fallback for polar dates where the provider has no data.
	ManualDay(ctx context.Context, input ManualDayInput) (DayOutput, error)

	// ComputeRange aggregates segments across a contiguous date range under
	// a wall-clock budget. A partial, timed-out result is not an error.
	ComputeRange(ctx context.Context, input RangeInput) (RangeOutput, error)

	// Suggest resolves the caller's window, aggregates candidate segments
	// and returns a ranked shortlist for the goal.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}
