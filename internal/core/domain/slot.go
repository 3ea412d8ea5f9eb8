package domain

// Slot — один часовой интервал с вместимостью и остатком мест.
// RemainingCapacity никогда не бывает отрицательным.
type Slot struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	Capacity          int    `json:"capacity"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// DayAvailability — слоты одного календарного дня.
// Дни без шаблона в результат не попадают вовсе.
type DayAvailability struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}
