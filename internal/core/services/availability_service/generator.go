package availability_service

import (
	"fmt"
	"time"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
)

// generateWeek разворачивает недельные шаблоны в сетку из 7 календарных дней.
// Дни без шаблона пропускаются целиком, порядок хронологический.
func (s *AvailabilityService) generateWeek(weekStart time.Time, templates []domain.WeeklyAvailability, appointments []domain.BookedAppointment) []domain.DayAvailability {
	bookedMap := s.buildBookedMap(appointments)

	days := make([]domain.DayAvailability, 0, 7)

	for i := 0; i < 7; i++ {
		currentDay := weekStart.AddDate(0, 0, i)
		dayName := domain.DaysOfWeekMap[currentDay.Weekday()]

		template, exists := findTemplateForDay(templates, dayName)
		if !exists {
			continue
		}

		// День с шаблоном попадает в ответ даже с пустым списком слотов
		// (возможно только при startTime >= endTime)
		days = append(days, domain.DayAvailability{
			Date:  currentDay.Format("2006-01-02"),
			Slots: s.generateDaySlots(template, currentDay, bookedMap),
		})
	}

	return days
}

// buildBookedMap строит локальный, живущий один запрос счетчик записей
// по усеченной до минут метке времени
func (s *AvailabilityService) buildBookedMap(appointments []domain.BookedAppointment) map[string]int {
	bookedMap := make(map[string]int)

	for _, appointment := range appointments {
		bookedMap[s.slotKey(appointment.AppointmentAt.Date)]++
	}

	return bookedMap
}

func (s *AvailabilityService) generateDaySlots(template domain.WeeklyAvailability, currentDay time.Time, bookedMap map[string]int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	// Из времени шаблона используется только час, минуты отбрасываются:
	// "09:30" дает тот же результат, что и "09:00"
	startHour := parseHourComponent(template.StartTime)
	endHour := parseHourComponent(template.EndTime)

	for hour := startHour; hour < endHour; hour++ {
		slotStart := time.Date(currentDay.Year(), currentDay.Month(), currentDay.Day(), hour, 0, 0, 0, currentDay.Location())

		bookedCount := bookedMap[s.slotKey(slotStart)]

		// Переброни не дают отрицательного остатка
		remainingCapacity := template.CapacityPerSlot - bookedCount
		if remainingCapacity < 0 {
			remainingCapacity = 0
		}

		slots = append(slots, domain.Slot{
			Date:              currentDay.Format("2006-01-02"),
			Time:              fmt.Sprintf("%02d:00", hour),
			Capacity:          template.CapacityPerSlot,
			RemainingCapacity: remainingCapacity,
		})
	}

	return slots
}

// slotKey — ключ сопоставления записи и слота. По умолчанию точное совпадение
// минут: запись на 14:07 не занимает слот 14:00. При включенном часовом
// интервале запись относится к слоту своего часа.
func (s *AvailabilityService) slotKey(t time.Time) string {
	if s.cfg.Generator.HourBucketMatching {
		return t.Format("2006-01-02T15") + ":00"
	}
	return t.Format("2006-01-02T15:04")
}
