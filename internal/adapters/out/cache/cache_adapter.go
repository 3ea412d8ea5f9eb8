package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

type CacheAdapter struct {
	weeksCache *weeksCache
	logger     out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruWeeksCache, err := lru.New[uint, *locationCacheEntry](cfg.Cache.LocationsSize)
	if err != nil {
		logger.Error("cache.weeks.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.LocationsSize,
		})
		return nil, err
	}

	weeksCache := &weeksCache{
		cache: lruWeeksCache,
		ttl:   cfg.Cache.WeeksTTL,
	}

	return &CacheAdapter{
		weeksCache: weeksCache,
		logger:     logger.WithModule("CacheAdapter"),
	}, nil
}

// weekKey — ключ недели внутри записи локации
func weekKey(weekStart time.Time) string {
	return weekStart.Format("2006-01-02")
}
