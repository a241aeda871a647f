package muhurat

// Weekday rotation tables. Row index is the civil weekday (0 = Sunday) of the
// day containing sunrise; columns are segment positions 0-7 within the half.
// The tables are the traditional Choghadiya sequences: each row is a cyclic
// shift of the seven names, so the first and last entry of a row coincide.

var dayTable = [7][SegmentsPerHalf]Name{
	{NameUdveg, NameChar, NameLabh, NameAmrit, NameKaal, NameShubh, NameRog, NameUdveg},   // Sunday
	{NameAmrit, NameKaal, NameShubh, NameRog, NameUdveg, NameChar, NameLabh, NameAmrit},   // Monday
	{NameRog, NameUdveg, NameChar, NameLabh, NameAmrit, NameKaal, NameShubh, NameRog},     // Tuesday
	{NameLabh, NameAmrit, NameKaal, NameShubh, NameRog, NameUdveg, NameChar, NameLabh},    // Wednesday
	{NameShubh, NameRog, NameUdveg, NameChar, NameLabh, NameAmrit, NameKaal, NameShubh},   // Thursday
	{NameChar, NameLabh, NameAmrit, NameKaal, NameShubh, NameRog, NameUdveg, NameChar},    // Friday
	{NameKaal, NameShubh, NameRog, NameUdveg, NameChar, NameLabh, NameAmrit, NameKaal},    // Saturday
}

var nightTable = [7][SegmentsPerHalf]Name{
	{NameShubh, NameAmrit, NameChar, NameRog, NameKaal, NameLabh, NameUdveg, NameShubh},   // Sunday
	{NameChar, NameRog, NameKaal, NameLabh, NameUdveg, NameShubh, NameAmrit, NameChar},    // Monday
	{NameKaal, NameLabh, NameUdveg, NameShubh, NameAmrit, NameChar, NameRog, NameKaal},    // Tuesday
	{NameUdveg, NameShubh, NameAmrit, NameChar, NameRog, NameKaal, NameLabh, NameUdveg},   // Wednesday
	{NameAmrit, NameChar, NameRog, NameKaal, NameLabh, NameUdveg, NameShubh, NameAmrit},   // Thursday
	{NameRog, NameKaal, NameLabh, NameUdveg, NameShubh, NameAmrit, NameChar, NameRog},     // Friday
	{NameLabh, NameUdveg, NameShubh, NameAmrit, NameChar, NameRog, NameKaal, NameLabh},    // Saturday
}

var labelByName = map[Name]Label{
	NameUdveg: LabelBad,
	NameAmrit: LabelBest,
	NameRog:   LabelEvil,
	NameLabh:  LabelGain,
	NameShubh: LabelGood,
	NameChar:  LabelNeutral,
	NameKaal:  LabelLoss,
}

// goodNames are favorable for planning; avoidNames are excluded from ranking
// unless the caller explicitly opts in.
var goodNames = map[Name]bool{
	NameAmrit: true,
	NameShubh: true,
	NameLabh:  true,
	NameChar:  true,
}

var avoidNames = map[Name]bool{
	NameRog:  true,
	NameKaal: true,
	NameUdveg: true,
}

// goalPreferences maps each goal to its ordered preferred names,
// most-preferred first.
var goalPreferences = map[Goal][]Name{
	GoalTravel:        {NameChar, NameLabh, NameAmrit, NameShubh},
	GoalPuja:          {NameShubh, NameAmrit, NameLabh, NameChar},
	GoalStartWork:     {NameAmrit, NameShubh, NameLabh, NameChar},
	GoalStartBusiness: {NameLabh, NameAmrit, NameShubh, NameChar},
	GoalBuyVehicle:    {NameLabh, NameChar, NameAmrit, NameShubh},
	GoalStudy:         {NameAmrit, NameLabh, NameShubh, NameChar},
	GoalCeremony:      {NameShubh, NameAmrit, NameChar, NameLabh},
	GoalMarriage:      {NameAmrit, NameShubh, NameLabh, NameChar},
	GoalOther:         {NameAmrit, NameShubh, NameLabh, NameChar},
}

// rationaleByName carries the static one-line explanation per name, used when
// the advisory provider is unavailable. Keyed by name only, not goal.
var rationaleByName = map[Name]string{
	NameAmrit: "Considered the most auspicious stretch of the day",
	NameShubh: "An auspicious period favored for ceremonies and worship",
	NameLabh:  "Traditionally linked with gain and progress",
	NameChar:  "A moving period well suited to travel and transitions",
	NameUdveg: "Associated with unease, usually avoided for new beginnings",
	NameRog:   "Associated with ailment, traditionally avoided",
	NameKaal:  "Associated with loss, traditionally avoided",
}

// LabelFor returns the fixed quality label of a segment name.
func LabelFor(name Name) Label {
	return labelByName[name]
}

// IsGood reports whether the name belongs to the favorable planning set.
func IsGood(name Name) bool {
	return goodNames[name]
}

// IsAvoid reports whether the name belongs to the unfavorable set.
func IsAvoid(name Name) bool {
	return avoidNames[name]
}

// GoalPreference returns the ordered preferred names for a goal.
// Unknown goals fall back to the generic "other" preference list.
func GoalPreference(goal Goal) []Name {
	if prefs, ok := goalPreferences[goal]; ok {
		return prefs
	}
	return goalPreferences[GoalOther]
}

// Rationale returns the static one-line explanation for a segment name.
func Rationale(name Name) string {
	return rationaleByName[name]
}

// ValidGoal reports whether the goal is one of the known goal keys.
func ValidGoal(goal Goal) bool {
	_, ok := goalPreferences[goal]
	return ok
}
