package in

import (
	"context"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
)

type AvailabilityUseCase interface {
	// Расчет недельной сетки слотов для одной локации
	GetWeekAvailability(ctx context.Context, locationID uint, weekStartDate string) ([]domain.DayAvailability, []domain.DebugInfo, error)

	// Расчет недельной сетки для нескольких локаций
	GetBatchWeekAvailability(ctx context.Context, locationIDs []uint, weekStartDate string) (map[uint][]domain.DayAvailability, error)

	// Инвалидация кэша при изменении записей или шаблонов локации
	InvalidateLocationCache(ctx context.Context, locationID uint) error
	InvalidateAllCache(ctx context.Context) error
}
