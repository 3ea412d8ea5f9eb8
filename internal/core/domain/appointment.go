package domain

import (
	"github.com/lernhub/location-availability-generator/internal/core/json_types"
)

// BookedAppointment — подтвержденная запись, занимающая одно место в слоте.
// Создается в портале (поток бронирования), здесь только читается.
type BookedAppointment struct {
	ID            uint                `json:"id"`
	LocationID    uint                `json:"locationId"`
	AppointmentAt json_types.DateTime `json:"appointment"`
}
