package planner

import (
	"time"

	"muhurat-planner/internal/muhurat"
)

// Window selects how the suggestion window is derived from "now".
type Window string

const (
	WindowNext3h Window = "3h"
	WindowNext6h Window = "6h"
	WindowDay    Window = "day"
	WindowNight  Window = "night"
	WindowWeek   Window = "week"
	WindowMonth  Window = "month"
	WindowCustom Window = "custom"
)

// Valid reports whether the window key is one of the closed set.
func (w Window) Valid() bool {
	switch w {
	case WindowNext3h, WindowNext6h, WindowDay, WindowNight, WindowWeek, WindowMonth, WindowCustom:
		return true
	}
	return false
}

// RequiresCoordinates reports whether the window always needs coordinates to
// drive automatic sun-times lookups. Short windows (3h/6h) need them only
// when they cross into the next civil day, which is decided at resolve time.
func (w Window) RequiresCoordinates() bool {
	switch w {
	case WindowDay, WindowNight, WindowWeek, WindowMonth, WindowCustom:
		return true
	}
	return false
}

// Coordinates is an optional lat/lon pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DaySegment is a muhurat segment tagged with the local calendar date its
// half belongs to, needed once segments are aggregated across days.
type DaySegment struct {
	muhurat.Segment
	Date string
}

// Result is one ranked suggestion. Ephemeral, never persisted.
type Result struct {
	Segment DaySegment
	Score   int
	Why     string
	Extra   string
}

// ResolvedWindow is the concrete [Start, End) pair a window key resolves to,
// plus the calendar dates the range computation must cover.
type ResolvedWindow struct {
	Key       Window
	Start     time.Time
	End       time.Time
	StartDate string
	EndDate   string
}

// --- UseCase Inputs ---

type DayInput struct {
	Coords   Coordinates
	Date     string // YYYY-MM-DD; empty means today in Timezone
	Timezone string
}

// ManualDayInput carries caller-entered wall-clock sun times, the fallback
// when the provider reports polar unavailability.
type ManualDayInput struct {
	Date             string
	Timezone         string
	SunriseClock     string // HH:mm local
	SunsetClock      string
	NextSunriseClock string // on the following date
}

type RangeInput struct {
	Coords    Coordinates
	Timezone  string
	StartDate string // inclusive
	EndDate   string // inclusive
	Budget    time.Duration // zero means the configured default
}

type SuggestInput struct {
	Goal         muhurat.Goal
	Window       Window
	Timezone     string
	City         string
	Coords       *Coordinates
	Date         string // selected date for day/night/week/month; empty means today
	CustomStart  string // YYYY-MM-DD HH:mm, custom window only
	CustomEnd    string
	IncludeAvoid bool
	Limit        int

	// Manual carries caller-entered sun times for short windows without
	// coordinates (the polar / no-location fallback).
	Manual *ManualDayInput
}

// --- UseCase Outputs ---

type DayOutput struct {
	Date     string
	Segments []DaySegment
	Current  *DaySegment
	NextGood *DaySegment
}

type RangeOutput struct {
	Segments []DaySegment
	TimedOut bool
}

type SuggestOutput struct {
	Results  []Result
	Window   ResolvedWindow
	TimedOut bool
}
