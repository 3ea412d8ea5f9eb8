package availability_service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
	"github.com/lernhub/location-availability-generator/internal/utils"
)

type AvailabilityService struct {
	templateStore    out.TemplateStorePort
	appointmentStore out.AppointmentStorePort
	cachePort        out.CachePort
	logger           out.LoggerPort
	cfg              *config.Config
	location         *time.Location
}

func NewAvailabilityService(
	templateStore out.TemplateStorePort,
	appointmentStore out.AppointmentStorePort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &AvailabilityService{
		templateStore:    templateStore,
		appointmentStore: appointmentStore,
		cachePort:        cachePort,
		cfg:              cfg,
		logger:           logger.WithModule("AvailabilityService"),
		location:         loc,
	}
}

func (s *AvailabilityService) GetWeekAvailability(ctx context.Context, locationID uint, weekStartDate string) ([]domain.DayAvailability, []domain.DebugInfo, error) {
	debugInfo := AvailabilityServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}
	s.logger.Info("availability.week.started", out.LogFields{
		"locationId":    locationID,
		"weekStartDate": weekStartDate,
	})

	// Некорректную дату отбрасываем сразу, до похода в хранилище
	parsedStart, err := utils.ParseDate(weekStartDate, s.location)
	if err != nil {
		s.logger.Warn("availability.week.invalid_date", out.LogFields{
			"locationId":    locationID,
			"weekStartDate": weekStartDate,
			"error":         err.Error(),
		})
		return nil, nil, &domain.InvalidDateError{Value: weekStartDate, Err: err}
	}
	weekStart := utils.StartCurrentDay(parsedStart)

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if days, exists := s.cachePort.GetWeek(ctx, locationID, weekStart); exists {
			s.logger.Debug("availability.week.cache.hit", out.LogFields{
				"locationId": locationID,
				"daysCount":  len(days),
			})
			return days, debugInfo.data, nil
		}

		s.logger.Debug("availability.week.cache.miss", out.LogFields{
			"locationId": locationID,
		})
	}

	get_templates_debug := domain.DebugInfo{
		Event: "availability.week.templates.fetch",
	}
	get_templates_debug.Start()

	templates, err := s.templateStore.GetWeeklyAvailabilities(ctx, locationID)
	if err != nil {
		s.logger.Error("availability.week.templates.fetch_failed", out.LogFields{
			"locationId": locationID,
			"error":      err.Error(),
		})
		return nil, nil, fmt.Errorf("availability.week.templates.fetch_failed: %w", err)
	}
	get_templates_debug.Elapse()
	debugInfo.AddDebugInfo(get_templates_debug)

	// Нет ни одного шаблона — это "часы работы не настроены", а не пустая неделя
	if len(templates) == 0 {
		s.logger.Warn("availability.week.no_template", out.LogFields{
			"locationId": locationID,
		})
		return nil, nil, &domain.NoTemplateError{LocationID: locationID}
	}

	windowStart, windowEnd := utils.WeekWindow(weekStart)

	get_appointments_debug := domain.DebugInfo{
		Event: "availability.week.appointments.fetch",
	}
	get_appointments_debug.Start()

	appointments, err := s.appointmentStore.GetBookedAppointments(ctx, locationID, windowStart, windowEnd)
	if err != nil {
		s.logger.Error("availability.week.appointments.fetch_failed", out.LogFields{
			"locationId": locationID,
			"error":      err.Error(),
		})
		return nil, nil, fmt.Errorf("availability.week.appointments.fetch_failed: %w", err)
	}
	get_appointments_debug.Elapse()
	debugInfo.AddDebugInfo(get_appointments_debug)

	generate_week_debug := domain.DebugInfo{
		Event: "availability.week.generate",
	}
	generate_week_debug.Start()
	days := s.generateWeek(weekStart, templates, appointments)
	generate_week_debug.Elapse()
	generate_week_debug.AddOption("appointments", fmt.Sprintf("%d", len(appointments)))
	debugInfo.AddDebugInfo(generate_week_debug)

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreWeek(ctx, locationID, weekStart, days)
	}

	s.logger.Info("availability.week.finished", out.LogFields{
		"locationId": locationID,
		"daysCount":  len(days),
	})

	return days, debugInfo.data, nil
}

func (s *AvailabilityService) GetBatchWeekAvailability(ctx context.Context, locationIDs []uint, weekStartDate string) (map[uint][]domain.DayAvailability, error) {
	result := make(map[uint][]domain.DayAvailability)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(locationIDs))

	for _, id := range locationIDs {
		wg.Add(1)
		go func(locationID uint) {
			defer wg.Done()

			days, _, err := s.GetWeekAvailability(ctx, locationID, weekStartDate)
			if err != nil {
				// Локации без настроенных часов просто не попадают в ответ
				var noTemplate *domain.NoTemplateError
				if errors.As(err, &noTemplate) {
					return
				}
				errCh <- err
				return
			}

			mu.Lock()
			result[locationID] = days
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	close(errCh)

	// Проверяем ошибки
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
