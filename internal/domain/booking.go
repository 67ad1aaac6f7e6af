package domain

import "time"

// Booking represents a guest's reservation request for one room over a date range.
// Не хранится как сущность: успешное бронирование только помечает номер занятым.
type Booking struct {
	RoomID    int64
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	in := DateOnly(b.CheckIn)
	out := DateOnly(b.CheckOut)
	return int(out.Sub(in).Hours() / 24)
}

// DateOnly обнуляет время, чтобы сравнивать только даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
