package usecase

import (
	"testing"
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
)

func daySegment(name muhurat.Name, start time.Time, length time.Duration) planner.DaySegment {
	return planner.DaySegment{
		Segment: muhurat.Segment{
			Name:  name,
			Label: muhurat.LabelFor(name),
			Start: start,
			End:   start.Add(length),
			IsDay: true,
		},
		Date: start.Format("2006-01-02"),
	}
}

func TestScoreSegment(t *testing.T) {
	windowStart := time.Date(2026, 2, 4, 6, 0, 0, 0, time.UTC)

	t.Run("Avoid Excluded By Default", func(t *testing.T) {
		seg := daySegment(muhurat.NameKaal, windowStart, time.Hour)
		if _, ok := scoreSegment(seg, muhurat.GoalTravel, windowStart, false); ok {
			t.Errorf("Kaal must be excluded when includeAvoid is false")
		}
	})

	t.Run("Avoid Included On Request", func(t *testing.T) {
		seg := daySegment(muhurat.NameKaal, windowStart, time.Hour)
		score, ok := scoreSegment(seg, muhurat.GoalTravel, windowStart, true)
		if !ok {
			t.Fatalf("Kaal must score when includeAvoid is true")
		}
		// No good base, no preference bonus, full sooner bonus.
		if score != 10 {
			t.Errorf("Kaal score = %d, want 10", score)
		}
	})

	t.Run("Top Preference Bonus", func(t *testing.T) {
		seg := daySegment(muhurat.NameChar, windowStart, time.Hour)
		score, ok := scoreSegment(seg, muhurat.GoalTravel, windowStart, false)
		if !ok {
			t.Fatalf("Char must qualify")
		}
		// 100 good + 40 first preference + 10 sooner.
		if score != 150 {
			t.Errorf("Char-for-travel score = %d, want 150", score)
		}
	})

	t.Run("Sooner Bonus Decays", func(t *testing.T) {
		near := daySegment(muhurat.NameAmrit, windowStart.Add(90*time.Minute), time.Hour)
		far := daySegment(muhurat.NameAmrit, windowStart.Add(12*time.Hour), time.Hour)

		nearScore, _ := scoreSegment(near, muhurat.GoalPuja, windowStart, false)
		farScore, _ := scoreSegment(far, muhurat.GoalPuja, windowStart, false)

		// 90 minutes in floors to 1 hour: bonus 9. 12 hours in: bonus 0.
		if nearScore-farScore != 9 {
			t.Errorf("sooner bonus delta = %d, want 9", nearScore-farScore)
		}
	})

	t.Run("No Bonus For Unpreferred Good Name", func(t *testing.T) {
		// Travel prefers Char, Labh, Amrit, Shubh: all four good names are
		// listed, so use puja (Shubh, Amrit, Labh, Char) vs an avoid name
		// with includeAvoid to see a zero-preference score.
		seg := daySegment(muhurat.NameUdveg, windowStart, time.Hour)
		score, _ := scoreSegment(seg, muhurat.GoalPuja, windowStart, true)
		if score != 10 {
			t.Errorf("unpreferred avoid score = %d, want bare sooner bonus 10", score)
		}
	})
}

func TestRankSegments(t *testing.T) {
	windowStart := time.Date(2026, 2, 4, 6, 0, 0, 0, time.UTC)

	t.Run("Orders By Score Then Start", func(t *testing.T) {
		segments := []planner.DaySegment{
			daySegment(muhurat.NameShubh, windowStart.Add(4*time.Hour), time.Hour),
			daySegment(muhurat.NameChar, windowStart.Add(2*time.Hour), time.Hour),
			daySegment(muhurat.NameLabh, windowStart.Add(6*time.Hour), time.Hour),
		}

		results := rankSegments(segments, muhurat.GoalTravel, windowStart, false, 0)
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		// Travel: Char 100+40+8=148, Labh 100+25+4=129, Shubh 100+10+6=116.
		if results[0].Segment.Name != muhurat.NameChar ||
			results[1].Segment.Name != muhurat.NameLabh ||
			results[2].Segment.Name != muhurat.NameShubh {
			t.Errorf("unexpected order: %s, %s, %s",
				results[0].Segment.Name, results[1].Segment.Name, results[2].Segment.Name)
		}
	})

	t.Run("Tie Broken By Earlier Start", func(t *testing.T) {
		early := daySegment(muhurat.NameAmrit, windowStart.Add(time.Hour), time.Hour)
		late := daySegment(muhurat.NameAmrit, windowStart.Add(2*time.Hour), time.Hour)
		// Same name, same floor-hour bucket would differ; push both into the
		// decayed region so scores tie exactly.
		early = daySegment(muhurat.NameAmrit, windowStart.Add(11*time.Hour), time.Hour)
		late = daySegment(muhurat.NameAmrit, windowStart.Add(12*time.Hour), time.Hour)

		results := rankSegments([]planner.DaySegment{late, early}, muhurat.GoalPuja, windowStart, false, 0)
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Score != results[1].Score {
			t.Fatalf("test premise broken: scores differ (%d vs %d)", results[0].Score, results[1].Score)
		}
		if !results[0].Segment.Start.Equal(early.Start) {
			t.Errorf("tie should be broken by the earlier start")
		}
	})

	t.Run("Default Limit Is Three", func(t *testing.T) {
		var segments []planner.DaySegment
		for i := 0; i < 6; i++ {
			segments = append(segments, daySegment(muhurat.NameLabh, windowStart.Add(time.Duration(i)*time.Hour), time.Hour))
		}
		results := rankSegments(segments, muhurat.GoalOther, windowStart, false, 0)
		if len(results) != 3 {
			t.Errorf("expected default limit of 3, got %d", len(results))
		}
	})

	t.Run("All Avoid Yields Empty Not Error", func(t *testing.T) {
		segments := []planner.DaySegment{
			daySegment(muhurat.NameRog, windowStart, time.Hour),
			daySegment(muhurat.NameKaal, windowStart.Add(time.Hour), time.Hour),
			daySegment(muhurat.NameUdveg, windowStart.Add(2*time.Hour), time.Hour),
		}
		results := rankSegments(segments, muhurat.GoalTravel, windowStart, false, 0)
		if len(results) != 0 {
			t.Errorf("expected empty result, got %d", len(results))
		}

		withAvoid := rankSegments(segments, muhurat.GoalTravel, windowStart, true, 0)
		if len(withAvoid) != 3 {
			t.Errorf("includeAvoid should surface all candidates, got %d", len(withAvoid))
		}
	})

	t.Run("Never Surfaces Avoid By Default", func(t *testing.T) {
		segments := []planner.DaySegment{
			daySegment(muhurat.NameRog, windowStart, time.Hour),
			daySegment(muhurat.NameAmrit, windowStart.Add(time.Hour), time.Hour),
		}
		for _, res := range rankSegments(segments, muhurat.GoalStudy, windowStart, false, 5) {
			if muhurat.IsAvoid(res.Segment.Name) {
				t.Errorf("avoid name %s surfaced with includeAvoid=false", res.Segment.Name)
			}
		}
	})

	t.Run("Results Carry Static Rationale", func(t *testing.T) {
		segments := []planner.DaySegment{daySegment(muhurat.NameLabh, windowStart, time.Hour)}
		results := rankSegments(segments, muhurat.GoalStartBusiness, windowStart, false, 0)
		if len(results) != 1 || results[0].Why != "Traditionally linked with gain and progress" {
			t.Errorf("expected the static Labh rationale, got %+v", results)
		}
	})
}
