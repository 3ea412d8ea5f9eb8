package domain

import "time"

type DayOfWeek string

const (
	DayOfWeekMonday    DayOfWeek = "Monday"
	DayOfWeekTuesday   DayOfWeek = "Tuesday"
	DayOfWeekWednesday DayOfWeek = "Wednesday"
	DayOfWeekThursday  DayOfWeek = "Thursday"
	DayOfWeekFriday    DayOfWeek = "Friday"
	DayOfWeekSaturday  DayOfWeek = "Saturday"
	DayOfWeekSunday    DayOfWeek = "Sunday"
)

var DaysOfWeekMap = map[time.Weekday]DayOfWeek{
	time.Monday:    DayOfWeekMonday,
	time.Tuesday:   DayOfWeekTuesday,
	time.Wednesday: DayOfWeekWednesday,
	time.Thursday:  DayOfWeekThursday,
	time.Friday:    DayOfWeekFriday,
	time.Saturday:  DayOfWeekSaturday,
	time.Sunday:    DayOfWeekSunday,
}

// WeeklyAvailability — шаблон рабочих часов локации на один день недели.
// На локацию допускается не больше одной строки на день недели.
type WeeklyAvailability struct {
	ID              uint      `json:"id"`
	LocationID      uint      `json:"locationId"`
	DayOfWeek       DayOfWeek `json:"dayOfWeek"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	CapacityPerSlot int       `json:"capacityPerSlot"`
}
