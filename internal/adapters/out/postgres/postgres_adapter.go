package postgres

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/json_types"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

// Имена таблиц и колонок соответствуют схеме портала (TypeORM, camelCase)

type weeklyAvailabilityRow struct {
	ID              uint   `gorm:"column:id;primaryKey"`
	LocationID      uint   `gorm:"column:locationId"`
	DayOfWeek       string `gorm:"column:dayOfWeek"`
	StartTime       string `gorm:"column:startTime"`
	EndTime         string `gorm:"column:endTime"`
	CapacityPerSlot int    `gorm:"column:capacityPerSlot"`
}

func (weeklyAvailabilityRow) TableName() string {
	return "location_weekly_availabilities"
}

type interestRow struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	LocationID  uint       `gorm:"column:locationId"`
	Appointment *time.Time `gorm:"column:appointment"`
}

func (interestRow) TableName() string {
	return "interests"
}

type PostgresAdapter struct {
	db     *gorm.DB
	logger out.LoggerPort
}

func NewPostgresAdapter(cfg *config.Config, logger out.LoggerPort) (*PostgresAdapter, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("postgres.connect.failed", out.LogFields{
			"host":     cfg.Postgres.Host,
			"database": cfg.Postgres.Database,
			"error":    err.Error(),
		})
		return nil, err
	}

	logger.Info("postgres.connected", out.LogFields{
		"host":     cfg.Postgres.Host,
		"database": cfg.Postgres.Database,
	})

	return &PostgresAdapter{
		db:     db,
		logger: logger,
	}, nil
}

func (a *PostgresAdapter) GetWeeklyAvailabilities(ctx context.Context, locationID uint) ([]domain.WeeklyAvailability, error) {
	var rows []weeklyAvailabilityRow

	err := a.db.WithContext(ctx).
		Where("\"locationId\" = ?", locationID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		a.logger.Error("postgres.weekly_availabilities.fetch_failed", out.LogFields{
			"locationId": locationID,
			"error":      err.Error(),
		})
		return nil, &domain.DataAccessError{Op: "weekly_availabilities.fetch", Err: err}
	}

	templates := make([]domain.WeeklyAvailability, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, domain.WeeklyAvailability{
			ID:              row.ID,
			LocationID:      row.LocationID,
			DayOfWeek:       domain.DayOfWeek(row.DayOfWeek),
			StartTime:       row.StartTime,
			EndTime:         row.EndTime,
			CapacityPerSlot: row.CapacityPerSlot,
		})
	}

	a.logger.Debug("postgres.weekly_availabilities.fetch_success", out.LogFields{
		"locationId": locationID,
		"count":      len(templates),
	})

	return templates, nil
}

func (a *PostgresAdapter) GetBookedAppointments(ctx context.Context, locationID uint, startDate, endDate time.Time) ([]domain.BookedAppointment, error) {
	var rows []interestRow

	err := a.db.WithContext(ctx).
		Select("id", "\"locationId\"", "appointment").
		Where("\"locationId\" = ? AND appointment BETWEEN ? AND ?", locationID, startDate, endDate).
		Order("appointment ASC").
		Find(&rows).Error
	if err != nil {
		a.logger.Error("postgres.booked_appointments.fetch_failed", out.LogFields{
			"locationId": locationID,
			"error":      err.Error(),
		})
		return nil, &domain.DataAccessError{Op: "booked_appointments.fetch", Err: err}
	}

	appointments := make([]domain.BookedAppointment, 0, len(rows))
	for _, row := range rows {
		// Заявки без назначенной встречи (appointment NULL) не занимают слоты
		if row.Appointment == nil {
			continue
		}
		appointments = append(appointments, domain.BookedAppointment{
			ID:            row.ID,
			LocationID:    row.LocationID,
			AppointmentAt: json_types.DateTime{Date: *row.Appointment},
		})
	}

	a.logger.Debug("postgres.booked_appointments.fetch_success", out.LogFields{
		"locationId": locationID,
		"count":      len(appointments),
	})

	return appointments, nil
}
