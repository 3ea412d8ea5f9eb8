package cache

import (
	"context"
	"testing"
	"time"

	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields)         {}
func (nopLogger) Info(event string, fields out.LogFields)          {}
func (nopLogger) Warn(event string, fields out.LogFields)          {}
func (nopLogger) Error(event string, fields out.LogFields)         {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestAdapter(t *testing.T, ttl time.Duration) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.LocationsSize = 10
	cfg.Cache.WeeksTTL = ttl

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return adapter
}

var testWeekStart = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func testDays() []domain.DayAvailability {
	return []domain.DayAvailability{
		{Date: "2024-06-03", Slots: []domain.Slot{
			{Date: "2024-06-03", Time: "09:00", Capacity: 2, RemainingCapacity: 1},
		}},
	}
}

func TestNewCacheAdapter_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter != nil {
		t.Fatalf("expected nil adapter when cache is disabled")
	}
}

func TestCacheAdapter_StoreAndGetWeek(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())

	days, exists := adapter.GetWeek(ctx, 1, testWeekStart)
	if !exists {
		t.Fatalf("expected cache hit")
	}
	if len(days) != 1 || days[0].Date != "2024-06-03" {
		t.Fatalf("unexpected cached week: %+v", days)
	}
}

func TestCacheAdapter_MissForUnknownLocation(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)

	_, exists := adapter.GetWeek(context.Background(), 42, testWeekStart)
	if exists {
		t.Fatalf("expected cache miss for unknown location")
	}
}

func TestCacheAdapter_MissForUnknownWeek(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())

	otherWeek := testWeekStart.AddDate(0, 0, 7)
	_, exists := adapter.GetWeek(ctx, 1, otherWeek)
	if exists {
		t.Fatalf("expected miss for week that was not stored")
	}
}

func TestCacheAdapter_WeekExpiresByTTL(t *testing.T) {
	adapter := newTestAdapter(t, 10*time.Millisecond)
	ctx := context.Background()

	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())
	time.Sleep(20 * time.Millisecond)

	_, exists := adapter.GetWeek(ctx, 1, testWeekStart)
	if exists {
		t.Fatalf("expected expired week to be treated as miss")
	}
}

func TestCacheAdapter_InvalidateLocation(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())
	adapter.StoreWeek(ctx, 2, testWeekStart, testDays())

	adapter.InvalidateLocation(ctx, 1)

	if _, exists := adapter.GetWeek(ctx, 1, testWeekStart); exists {
		t.Fatalf("expected location 1 to be invalidated")
	}
	// Другие локации не затрагиваются
	if _, exists := adapter.GetWeek(ctx, 2, testWeekStart); !exists {
		t.Fatalf("expected location 2 to stay cached")
	}
}

func TestCacheAdapter_InvalidateAll(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())
	adapter.StoreWeek(ctx, 2, testWeekStart, testDays())

	adapter.InvalidateAll(ctx)

	if _, exists := adapter.GetWeek(ctx, 1, testWeekStart); exists {
		t.Fatalf("expected all locations to be invalidated")
	}
	if _, exists := adapter.GetWeek(ctx, 2, testWeekStart); exists {
		t.Fatalf("expected all locations to be invalidated")
	}
}

func TestCacheAdapter_SeveralWeeksPerLocation(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	secondWeek := testWeekStart.AddDate(0, 0, 7)
	adapter.StoreWeek(ctx, 1, testWeekStart, testDays())
	adapter.StoreWeek(ctx, 1, secondWeek, testDays())

	if _, exists := adapter.GetWeek(ctx, 1, testWeekStart); !exists {
		t.Fatalf("expected first week to stay cached")
	}
	if _, exists := adapter.GetWeek(ctx, 1, secondWeek); !exists {
		t.Fatalf("expected second week to be cached")
	}
}
