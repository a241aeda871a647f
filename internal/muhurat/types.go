package muhurat

import "time"

// Name identifies one of the seven recurring segment identities.
type Name string

const (
	NameUdveg Name = "Udveg"
	NameAmrit Name = "Amrit"
	NameRog   Name = "Rog"
	NameLabh  Name = "Labh"
	NameShubh Name = "Shubh"
	NameChar  Name = "Char"
	NameKaal  Name = "Kaal"
)

// Label is the fixed quality classification of a segment name.
type Label string

const (
	LabelBest    Label = "Best"
	LabelGood    Label = "Good"
	LabelGain    Label = "Gain"
	LabelNeutral Label = "Neutral"
	LabelEvil    Label = "Evil"
	LabelLoss    Label = "Loss"
	LabelBad     Label = "Bad"
)

// Goal is a user-stated purpose for picking a time slot.
type Goal string

const (
	GoalTravel        Goal = "travel"
	GoalPuja          Goal = "puja"
	GoalStartWork     Goal = "start_work"
	GoalStartBusiness Goal = "start_business"
	GoalBuyVehicle    Goal = "buy_vehicle"
	GoalStudy         Goal = "study"
	GoalCeremony      Goal = "ceremony"
	GoalMarriage      Goal = "marriage"
	GoalOther         Goal = "other"
)

// SegmentsPerHalf is the number of segments each day/night half is sliced into.
const SegmentsPerHalf = 8

// Segment is one of the 16 sub-intervals of a civil day.
// The interval is half-open: an instant at Start belongs to the segment,
// an instant at End belongs to the next one.
type Segment struct {
	Name  Name
	Label Label
	Start time.Time
	End   time.Time
	IsDay bool
	Index int // 0-7 within its half
}

// Contains reports whether t falls inside the segment's [Start, End) interval.
func (s Segment) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}
