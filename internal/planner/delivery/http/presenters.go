package http

import (
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
)

// --- Request DTOs ---

type dayReq struct {
	Lat  *float64 `form:"lat"  binding:"required"`
	Lon  *float64 `form:"lon"  binding:"required"`
	Date string   `form:"date" binding:"omitempty,datetime=2006-01-02"`
	TZ   string   `form:"tz"`
}

func (r dayReq) validate() error { return nil }

func (r dayReq) toInput(defaultTZ string) planner.DayInput {
	tz := r.TZ
	if tz == "" {
		tz = defaultTZ
	}
	return planner.DayInput{
		Coords:   planner.Coordinates{Lat: *r.Lat, Lon: *r.Lon},
		Date:     r.Date,
		Timezone: tz,
	}
}

// ---

type manualDayReq struct {
	Date        string `form:"date"         binding:"required,datetime=2006-01-02"`
	TZ          string `form:"tz"`
	Sunrise     string `form:"sunrise"      binding:"required"`
	Sunset      string `form:"sunset"       binding:"required"`
	NextSunrise string `form:"next_sunrise" binding:"required"`
}

func (r manualDayReq) validate() error { return nil }

func (r manualDayReq) toInput(defaultTZ string) planner.ManualDayInput {
	tz := r.TZ
	if tz == "" {
		tz = defaultTZ
	}
	return planner.ManualDayInput{
		Date:             r.Date,
		Timezone:         tz,
		SunriseClock:     r.Sunrise,
		SunsetClock:      r.Sunset,
		NextSunriseClock: r.NextSunrise,
	}
}

// ---

type manualTimesReq struct {
	Date        string `json:"date"         binding:"required,datetime=2006-01-02"`
	Sunrise     string `json:"sunrise"      binding:"required"`
	Sunset      string `json:"sunset"       binding:"required"`
	NextSunrise string `json:"next_sunrise" binding:"required"`
}

type suggestReq struct {
	Goal         string          `json:"goal"          binding:"required"`
	Window       string          `json:"window"        binding:"required"`
	TZ           string          `json:"tz"`
	City         string          `json:"city"`
	Lat          *float64        `json:"lat"`
	Lon          *float64        `json:"lon"`
	Date         string          `json:"date"          binding:"omitempty,datetime=2006-01-02"`
	CustomStart  string          `json:"custom_start"`
	CustomEnd    string          `json:"custom_end"`
	IncludeAvoid bool            `json:"include_avoid"`
	Limit        int             `json:"limit"         binding:"omitempty,min=1,max=10"`
	Manual       *manualTimesReq `json:"manual"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput(defaultTZ string) planner.SuggestInput {
	tz := r.TZ
	if tz == "" {
		tz = defaultTZ
	}

	input := planner.SuggestInput{
		Goal:         muhurat.Goal(r.Goal),
		Window:       planner.Window(r.Window),
		Timezone:     tz,
		City:         r.City,
		Date:         r.Date,
		CustomStart:  r.CustomStart,
		CustomEnd:    r.CustomEnd,
		IncludeAvoid: r.IncludeAvoid,
		Limit:        r.Limit,
	}
	if r.Lat != nil && r.Lon != nil {
		input.Coords = &planner.Coordinates{Lat: *r.Lat, Lon: *r.Lon}
	}
	if r.Manual != nil {
		input.Manual = &planner.ManualDayInput{
			Date:             r.Manual.Date,
			Timezone:         tz,
			SunriseClock:     r.Manual.Sunrise,
			SunsetClock:      r.Manual.Sunset,
			NextSunriseClock: r.Manual.NextSunrise,
		}
	}
	return input
}

// --- Response DTOs ---

type segmentResp struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	IsDay bool      `json:"is_day"`
	Index int       `json:"index"`
	Date  string    `json:"date"`
}

func newSegmentResp(seg planner.DaySegment) segmentResp {
	return segmentResp{
		Name:  string(seg.Name),
		Label: string(seg.Label),
		Start: seg.Start,
		End:   seg.End,
		IsDay: seg.IsDay,
		Index: seg.Index,
		Date:  seg.Date,
	}
}

type dayResp struct {
	Date     string        `json:"date"`
	Segments []segmentResp `json:"segments"`
	Current  *segmentResp  `json:"current,omitempty"`
	NextGood *segmentResp  `json:"next_good,omitempty"`
}

func newDayResp(out planner.DayOutput) dayResp {
	resp := dayResp{
		Date:     out.Date,
		Segments: make([]segmentResp, 0, len(out.Segments)),
	}
	for _, seg := range out.Segments {
		resp.Segments = append(resp.Segments, newSegmentResp(seg))
	}
	if out.Current != nil {
		cur := newSegmentResp(*out.Current)
		resp.Current = &cur
	}
	if out.NextGood != nil {
		next := newSegmentResp(*out.NextGood)
		resp.NextGood = &next
	}
	return resp
}

type resultResp struct {
	Segment segmentResp `json:"segment"`
	Score   int         `json:"score"`
	Why     string      `json:"why"`
	Extra   string      `json:"extra,omitempty"`
}

type windowResp struct {
	Key       string    `json:"key"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type suggestResp struct {
	Results  []resultResp `json:"results"`
	Window   windowResp   `json:"window"`
	TimedOut bool         `json:"timed_out"`
}

func newSuggestResp(out planner.SuggestOutput) suggestResp {
	resp := suggestResp{
		Results: make([]resultResp, 0, len(out.Results)),
		Window: windowResp{
			Key:       string(out.Window.Key),
			Start:     out.Window.Start,
			End:       out.Window.End,
			StartDate: out.Window.StartDate,
			EndDate:   out.Window.EndDate,
		},
		TimedOut: out.TimedOut,
	}
	for _, res := range out.Results {
		resp.Results = append(resp.Results, resultResp{
			Segment: newSegmentResp(res.Segment),
			Score:   res.Score,
			Why:     res.Why,
			Extra:   res.Extra,
		})
	}
	return resp
}
