package out

import (
	"context"
	"time"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
)

type TemplateStorePort interface {
	// Шаблоны рабочих часов локации, не больше одного на день недели
	GetWeeklyAvailabilities(ctx context.Context, locationID uint) ([]domain.WeeklyAvailability, error)
}

type AppointmentStorePort interface {
	// Записи локации с меткой времени в диапазоне [startDate, endDate] включительно
	GetBookedAppointments(ctx context.Context, locationID uint, startDate, endDate time.Time) ([]domain.BookedAppointment, error)
}
