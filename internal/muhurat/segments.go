package muhurat

import "time"

// Compute slices the day half [sunrise, sunset) and the night half
// [sunset, nextSunrise) into 8 equal segments each and returns all 16 in
// chronological order. weekday is the civil weekday (0 = Sunday) of the day
// containing sunrise.
//
// Precondition from the sun-times provider: sunrise < sunset < nextSunrise.
// This is not defensively checked.
func Compute(sunrise, sunset, nextSunrise time.Time, weekday int) []Segment {
	segments := make([]Segment, 0, 2*SegmentsPerHalf)
	segments = append(segments, computeHalf(sunrise, sunset, dayTable[weekday], true)...)
	segments = append(segments, computeHalf(sunset, nextSunrise, nightTable[weekday], false)...)
	return segments
}

// computeHalf slices [from, to) into 8 segments. The last segment's end is
// pinned to the half's terminal instant instead of being derived by repeated
// slice-width multiplication, so the boundary never drifts.
func computeHalf(from, to time.Time, names [SegmentsPerHalf]Name, isDay bool) []Segment {
	slice := to.Sub(from) / SegmentsPerHalf

	segments := make([]Segment, 0, SegmentsPerHalf)
	for i := 0; i < SegmentsPerHalf; i++ {
		start := from.Add(slice * time.Duration(i))
		end := from.Add(slice * time.Duration(i+1))
		if i == SegmentsPerHalf-1 {
			end = to
		}

		segments = append(segments, Segment{
			Name:  names[i],
			Label: labelByName[names[i]],
			Start: start,
			End:   end,
			IsDay: isDay,
			Index: i,
		})
	}
	return segments
}

// Current returns the segment whose [Start, End) interval contains now.
// An instant exactly on a boundary belongs to the segment that starts there.
func Current(segments []Segment, now time.Time) (Segment, bool) {
	for _, seg := range segments {
		if seg.Contains(now) {
			return seg, true
		}
	}
	return Segment{}, false
}

// NextGood returns the first segment, in ascending start order, that starts
// strictly after now and carries a name from the favorable set. This checks
// raw quality only, not goal-specific preference.
func NextGood(segments []Segment, now time.Time) (Segment, bool) {
	var best Segment
	found := false
	for _, seg := range segments {
		if !seg.Start.After(now) || !goodNames[seg.Name] {
			continue
		}
		if !found || seg.Start.Before(best.Start) {
			best = seg
			found = true
		}
	}
	return best, found
}

// FilterWindow returns the segments whose start instant falls inside
// [from, to), preserving order.
func FilterWindow(segments []Segment, from, to time.Time) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if !seg.Start.Before(from) && seg.Start.Before(to) {
			out = append(out, seg)
		}
	}
	return out
}
