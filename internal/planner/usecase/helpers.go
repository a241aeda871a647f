package usecase

import (
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/tzdate"
)

func prevDateISO(dateISO string) (string, error) {
	d, err := time.Parse(tzdate.DateFormatISO, dateISO)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format(tzdate.DateFormatISO), nil
}

// tagSegments attaches the owning calendar date to each segment.
func tagSegments(segments []muhurat.Segment, date string) []planner.DaySegment {
	tagged := make([]planner.DaySegment, 0, len(segments))
	for _, seg := range segments {
		tagged = append(tagged, planner.DaySegment{Segment: seg, Date: date})
	}
	return tagged
}

// filterDaySegments keeps the segments whose start instant falls inside
// [from, to), preserving order.
func filterDaySegments(segments []planner.DaySegment, from, to time.Time) []planner.DaySegment {
	out := make([]planner.DaySegment, 0, len(segments))
	for _, seg := range segments {
		if !seg.Start.Before(from) && seg.Start.Before(to) {
			out = append(out, seg)
		}
	}
	return out
}
