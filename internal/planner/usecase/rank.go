package usecase

import (
	"sort"
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
)

// Scoring constants. A favorable quality is worth 100; the goal's preference
// list adds a positional bonus; starting soon after the window opens adds up
// to 10 more, decaying to nothing once a segment starts 10+ hours in.
const baseGoodScore = 100

var preferenceBonus = [4]int{40, 25, 15, 10}

// scoreSegment scores one candidate. The second return is false when the
// segment is excluded outright (unfavorable name and includeAvoid unset).
func scoreSegment(seg planner.DaySegment, goal muhurat.Goal, windowStart time.Time, includeAvoid bool) (int, bool) {
	good := muhurat.IsGood(seg.Name)
	if !good && !includeAvoid {
		return 0, false
	}

	score := 0
	if good {
		score += baseGoodScore
	}

	for i, name := range muhurat.GoalPreference(goal) {
		if name == seg.Name && i < len(preferenceBonus) {
			score += preferenceBonus[i]
			break
		}
	}

	hours := int(seg.Start.Sub(windowStart).Hours())
	if hours < 0 {
		hours = 0
	}
	if sooner := 10 - hours; sooner > 0 {
		score += sooner
	}

	return score, true
}

// rankSegments scores every candidate and returns the top limit results,
// sorted by score descending with ties broken by earliest start. An empty
// result is a legitimate "no good slot in window" outcome, not an error.
func rankSegments(segments []planner.DaySegment, goal muhurat.Goal, windowStart time.Time, includeAvoid bool, limit int) []planner.Result {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	results := make([]planner.Result, 0, len(segments))
	for _, seg := range segments {
		score, ok := scoreSegment(seg, goal, windowStart, includeAvoid)
		if !ok {
			continue
		}
		results = append(results, planner.Result{
			Segment: seg,
			Score:   score,
			Why:     muhurat.Rationale(seg.Name),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Segment.Start.Before(results[j].Segment.Start)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
