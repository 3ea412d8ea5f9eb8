package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны.
	// Метки без таймзоны трактуются как локальное время локации,
	// сравнение в генераторе идет по "настенным" часам
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02T15:04:05"))
}
