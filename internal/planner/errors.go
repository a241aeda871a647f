package planner

import "errors"

var (
	ErrInvalidGoal           = errors.New("unknown goal")
	ErrInvalidWindow         = errors.New("unknown window")
	ErrInvalidDate           = errors.New("date must be formatted as YYYY-MM-DD")
	ErrCoordinatesRequired   = errors.New("coordinates are required for this window")
	ErrCustomRangeIncomplete = errors.New("custom window requires both start and end")
	ErrCustomRangeInvalid    = errors.New("custom window end must be after its start")
	ErrManualTimesInvalid    = errors.New("manual sun times must be ordered sunrise < sunset < next sunrise")
)
