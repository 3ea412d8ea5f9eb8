package availability_service

import (
	"strconv"
	"strings"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
)

// Функция для поиска шаблона на день недели, берется первый подходящий
func findTemplateForDay(templates []domain.WeeklyAvailability, dayName domain.DayOfWeek) (domain.WeeklyAvailability, bool) {
	for _, template := range templates {
		if template.DayOfWeek == dayName {
			return template, true
		}
	}

	return domain.WeeklyAvailability{}, false
}

// parseHourComponent достает целый час из "HH:mm" или "HH:mm:ss".
// Неразборчивое значение дает 0: день тогда остается без слотов
func parseHourComponent(value string) int {
	parts := strings.Split(value, ":")

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	return hour
}
