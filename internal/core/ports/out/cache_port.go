package out

import (
	"context"
	"time"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
)

type CachePort interface {
	// Кэширование рассчитанных недель по локациям
	GetWeek(ctx context.Context, locationID uint, weekStart time.Time) ([]domain.DayAvailability, bool)
	StoreWeek(ctx context.Context, locationID uint, weekStart time.Time, days []domain.DayAvailability)
	InvalidateLocation(ctx context.Context, locationID uint)
	InvalidateAll(ctx context.Context)
}
