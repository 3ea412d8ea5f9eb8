package utils

import (
	"fmt"
	"time"
)

// StartCurrentDay возвращает ту же дату со временем 00:00, таймзона остается прежней.
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekWindow возвращает границы 7-дневного окна недели:
// [weekStart 00:00:00, weekStart+6 дней 23:59:59].
func WeekWindow(weekStart time.Time) (time.Time, time.Time) {
	start := StartCurrentDay(weekStart)
	end := start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	return start, end
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует
// парсить дату со временем, но без таймзоны, затем как дату без времени.
// Для строк без таймзоны используется переданная локация.
func ParseDate(str string, location *time.Location) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}
