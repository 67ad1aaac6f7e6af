package book_room

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// Названия полей формы бронирования
const (
	FieldGuestName = "guestName"
	FieldCheckIn   = "checkIn"
	FieldCheckOut  = "checkOut"
)

// Коды ошибок валидации
const (
	CodeRequired         = "required"
	CodeMinLength        = "minlength"
	CodeInvalidDate      = "invalidDate"
	CodeDateRangeInvalid = "dateRangeInvalid"
)

// Form сырые значения полей формы бронирования
type Form struct {
	GuestName string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string // YYYY-MM-DD
}

// Request модель запроса на бронирование номера
type Request struct {
	RoomID int64
	Form   Form
}

// Response модель ответа с результатом бронирования
type Response struct {
	Success bool
	Booking domain.Booking
	Room    domain.Room   // Номер после изменения
	Rooms   []domain.Room // Полный обновленный список
	Nights  int
}
