package availability_service

import (
	"context"
)

// Инвалидация кэша недель

func (s *AvailabilityService) InvalidateLocationCache(ctx context.Context, locationID uint) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateLocation(ctx, locationID)

	return nil
}

func (s *AvailabilityService) InvalidateAllCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAll(ctx)

	return nil
}
