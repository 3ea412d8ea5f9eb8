package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

type weekCacheEntry struct {
	Days     []domain.DayAvailability
	StoredAt time.Time
}

type locationCacheEntry struct {
	Weeks map[string]*weekCacheEntry
}

type weeksCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[uint, *locationCacheEntry]
	ttl   time.Duration
}

// Кэширование рассчитанных недель

func (c *CacheAdapter) GetWeek(ctx context.Context, locationID uint, weekStart time.Time) ([]domain.DayAvailability, bool) {
	c.weeksCache.mu.RLock()
	defer c.weeksCache.mu.RUnlock()

	entry, exists := c.weeksCache.cache.Get(locationID)
	if !exists {
		c.logger.Debug("cache.weeks.get.miss", out.LogFields{
			"locationId": locationID,
		})
		return nil, false
	}

	week, exists := entry.Weeks[weekKey(weekStart)]
	if !exists {
		c.logger.Debug("cache.weeks.get.week_miss", out.LogFields{
			"locationId": locationID,
			"weekStart":  weekKey(weekStart),
		})
		return nil, false
	}

	// Записи могут создаваться мимо событий инвалидации, поэтому у недели есть TTL
	if time.Since(week.StoredAt) > c.weeksCache.ttl {
		c.logger.Debug("cache.weeks.get.expired", out.LogFields{
			"locationId": locationID,
			"weekStart":  weekKey(weekStart),
		})
		return nil, false
	}

	c.logger.Debug("cache.weeks.get.hit", out.LogFields{
		"locationId": locationID,
		"weekStart":  weekKey(weekStart),
		"daysCount":  len(week.Days),
	})
	return week.Days, true
}

func (c *CacheAdapter) StoreWeek(ctx context.Context, locationID uint, weekStart time.Time, days []domain.DayAvailability) {
	c.weeksCache.mu.Lock()
	defer c.weeksCache.mu.Unlock()

	c.logger.Debug("cache.weeks.store", out.LogFields{
		"locationId": locationID,
		"weekStart":  weekKey(weekStart),
		"daysCount":  len(days),
	})

	entry, exists := c.weeksCache.cache.Get(locationID)
	if !exists {
		entry = &locationCacheEntry{
			Weeks: make(map[string]*weekCacheEntry),
		}
	}

	entry.Weeks[weekKey(weekStart)] = &weekCacheEntry{
		Days:     days,
		StoredAt: time.Now(),
	}

	c.weeksCache.cache.Add(locationID, entry)
}

func (c *CacheAdapter) InvalidateLocation(ctx context.Context, locationID uint) {
	c.weeksCache.mu.Lock()
	defer c.weeksCache.mu.Unlock()

	c.weeksCache.cache.Remove(locationID)
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.weeksCache.mu.Lock()
	defer c.weeksCache.mu.Unlock()

	c.weeksCache.cache.Purge()
}
