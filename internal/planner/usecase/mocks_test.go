package usecase

import (
	"context"
	"time"

	"muhurat-planner/pkg/advisory"
	"muhurat-planner/pkg/suntimes"
	"muhurat-planner/pkg/tzdate"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is a function-field sun-times repository fake.
type fakeRepo struct {
	calls        int
	sunTimesFunc func(lat, lon float64, dateISO, timezone string) (suntimes.Times, error)
}

func (f *fakeRepo) SunTimes(ctx context.Context, lat, lon float64, dateISO, timezone string) (suntimes.Times, error) {
	f.calls++
	if f.sunTimesFunc != nil {
		return f.sunTimesFunc(lat, lon, dateISO, timezone)
	}
	return utcSunTimes(dateISO), nil
}

// utcSunTimes fabricates plausible sun times for a date: sunrise 06:10,
// sunset 18:20, next sunrise 06:09 the following day, all UTC.
func utcSunTimes(dateISO string) suntimes.Times {
	d, _ := time.Parse(tzdate.DateFormatISO, dateISO)
	return suntimes.Times{
		Sunrise:     d.Add(6*time.Hour + 10*time.Minute),
		Sunset:      d.Add(18*time.Hour + 20*time.Minute),
		NextSunrise: d.Add(24*time.Hour + 6*time.Hour + 9*time.Minute),
	}
}

// fakeAdvisor is a function-field advisory fake.
type fakeAdvisor struct {
	calls       int
	explainFunc func(req advisory.Request) (advisory.Response, error)
}

func (f *fakeAdvisor) Explain(ctx context.Context, req advisory.Request) (advisory.Response, error) {
	f.calls++
	if f.explainFunc != nil {
		return f.explainFunc(req)
	}
	return advisory.Response{Why: "fake advisory"}, nil
}

// fixedClock pins uc.now to one instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// steppingClock advances by step on every reading, starting at start.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}
