package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"muhurat-planner/internal/muhurat"
	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/suntimes"
)

func TestDay(t *testing.T) {
	ctx := context.Background()
	coords := planner.Coordinates{Lat: 23.0225, Lon: 72.5714}

	t.Run("Full Day With Current And Next", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		// Mid-morning on Wednesday 2026-02-04.
		uc.now = fixedClock(time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC))

		out, err := uc.Day(ctx, planner.DayInput{Coords: coords, Date: "2026-02-04", Timezone: "UTC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Segments) != 16 {
			t.Fatalf("expected 16 segments, got %d", len(out.Segments))
		}
		if out.Date != "2026-02-04" {
			t.Errorf("date = %s, want 2026-02-04", out.Date)
		}

		// 08:00 falls in Wednesday's second day slice, Amrit (07:41-09:12).
		if out.Current == nil || out.Current.Name != muhurat.NameAmrit {
			t.Errorf("current segment = %+v, want Amrit", out.Current)
		}
		// Next good after 08:00 skips Kaal and lands on Shubh (10:43).
		if out.NextGood == nil || out.NextGood.Name != muhurat.NameShubh {
			t.Errorf("next good segment = %+v, want Shubh", out.NextGood)
		}
	})

	t.Run("Defaults To Local Today", func(t *testing.T) {
		repo := &fakeRepo{}
		var gotDate string
		repo.sunTimesFunc = func(lat, lon float64, dateISO, timezone string) (suntimes.Times, error) {
			gotDate = dateISO
			return utcSunTimes(dateISO), nil
		}
		uc := New(&mockLogger{}, repo, nil, 0)
		uc.now = fixedClock(time.Date(2026, 2, 4, 22, 0, 0, 0, time.UTC))

		out, err := uc.Day(ctx, planner.DayInput{Coords: coords, Timezone: "Asia/Kolkata"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 22:00 UTC is already Feb 5 in Kolkata.
		if gotDate != "2026-02-05" || out.Date != "2026-02-05" {
			t.Errorf("resolved date = %s/%s, want 2026-02-05", gotDate, out.Date)
		}
	})

	t.Run("Outside The Day Has No Current", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		uc.now = fixedClock(time.Date(2026, 2, 4, 3, 0, 0, 0, time.UTC)) // before sunrise

		out, err := uc.Day(ctx, planner.DayInput{Coords: coords, Date: "2026-02-04", Timezone: "UTC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Current != nil {
			t.Errorf("expected no current segment before sunrise, got %+v", out.Current)
		}
		if out.NextGood == nil {
			t.Errorf("expected a next good segment before sunrise")
		}
	})

	t.Run("Provider Unavailable Propagates", func(t *testing.T) {
		repo := &fakeRepo{
			sunTimesFunc: func(lat, lon float64, dateISO, timezone string) (suntimes.Times, error) {
				return suntimes.Times{}, suntimes.ErrUnavailable
			},
		}
		uc := New(&mockLogger{}, repo, nil, 0)

		_, err := uc.Day(ctx, planner.DayInput{Coords: coords, Date: "2026-01-05", Timezone: "UTC"})
		if !errors.Is(err, suntimes.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestManualDay(t *testing.T) {
	ctx := context.Background()

	valid := planner.ManualDayInput{
		Date:             "2026-02-04",
		Timezone:         "Asia/Kolkata",
		SunriseClock:     "07:15",
		SunsetClock:      "18:30",
		NextSunriseClock: "07:14",
	}

	t.Run("Builds Segments From Wall Clocks", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		uc.now = fixedClock(time.Date(2026, 2, 4, 5, 0, 0, 0, time.UTC)) // 10:30 IST

		out, err := uc.ManualDay(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Segments) != 16 {
			t.Fatalf("expected 16 segments, got %d", len(out.Segments))
		}

		// 07:15 IST on 2026-02-04 is 01:45 UTC.
		wantSunrise := time.Date(2026, 2, 4, 1, 45, 0, 0, time.UTC)
		if !out.Segments[0].Start.Equal(wantSunrise) {
			t.Errorf("first segment starts %v, want %v", out.Segments[0].Start, wantSunrise)
		}
		// Night half ends at 07:14 IST the next day.
		wantNext := time.Date(2026, 2, 5, 1, 44, 0, 0, time.UTC)
		if !out.Segments[15].End.Equal(wantNext) {
			t.Errorf("last segment ends %v, want %v", out.Segments[15].End, wantNext)
		}
		if out.Current == nil {
			t.Errorf("10:30 IST should fall inside the day half")
		}
	})

	t.Run("Missing Clock", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		input := valid
		input.NextSunriseClock = ""
		if _, err := uc.ManualDay(ctx, input); !errors.Is(err, planner.ErrManualTimesInvalid) {
			t.Errorf("expected ErrManualTimesInvalid, got %v", err)
		}
	})

	t.Run("Unordered Times", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		input := valid
		input.SunriseClock = "19:00" // after sunset
		if _, err := uc.ManualDay(ctx, input); !errors.Is(err, planner.ErrManualTimesInvalid) {
			t.Errorf("expected ErrManualTimesInvalid, got %v", err)
		}
	})

	t.Run("Bad Clock Format", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepo{}, nil, 0)
		input := valid
		input.SunsetClock = "6pm"
		if _, err := uc.ManualDay(ctx, input); !errors.Is(err, planner.ErrManualTimesInvalid) {
			t.Errorf("expected ErrManualTimesInvalid, got %v", err)
		}
	})
}
