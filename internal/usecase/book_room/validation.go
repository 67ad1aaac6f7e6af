package book_room

import (
	"strings"
	"time"
	"unicode/utf16"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ValidationResult ошибки уровня полей и уровня формы.
// Ошибка диапазона дат хранится отдельно от ошибок полей.
type ValidationResult struct {
	FieldErrors map[string][]string
	FormErrors  []string
}

// Valid returns true if there are neither field-level nor form-level errors
func (r ValidationResult) Valid() bool {
	return len(r.FieldErrors) == 0 && len(r.FormErrors) == 0
}

// HasFieldError returns true if the field has an error with the given code
func (r ValidationResult) HasFieldError(field, code string) bool {
	for _, c := range r.FieldErrors[field] {
		if c == code {
			return true
		}
	}
	return false
}

// HasFormError returns true if the form has an error with the given code
func (r ValidationResult) HasFormError(code string) bool {
	for _, c := range r.FormErrors {
		if c == code {
			return true
		}
	}
	return false
}

func (r *ValidationResult) addFieldError(field, code string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string][]string)
	}
	r.FieldErrors[field] = append(r.FieldErrors[field], code)
}

// ValidateForm проверяет поля формы и диапазон дат
func ValidateForm(form Form) ValidationResult {
	var result ValidationResult

	// Имя проверяется как есть, без обрезки пробелов.
	// Длина считается в UTF-16 единицах, как у поля формы в браузере.
	switch {
	case form.GuestName == "":
		result.addFieldError(FieldGuestName, CodeRequired)
	case guestNameLength(form.GuestName) < domain.MinGuestNameLength:
		result.addFieldError(FieldGuestName, CodeMinLength)
	}

	checkIn, checkInOK := validateDateField(&result, FieldCheckIn, form.CheckIn)
	checkOut, checkOutOK := validateDateField(&result, FieldCheckOut, form.CheckOut)

	// Сравниваются только даты: выезд в день заезда тоже недопустим
	if checkInOK && checkOutOK && !checkOut.After(checkIn) {
		result.FormErrors = append(result.FormErrors, CodeDateRangeInvalid)
	}

	return result
}

// ToBooking валидирует форму и собирает бронирование
func ToBooking(roomID int64, form Form) (domain.Booking, ValidationResult) {
	result := ValidateForm(form)
	if !result.Valid() {
		return domain.Booking{}, result
	}

	// Ошибки парсинга уже исключены валидацией
	checkIn, _ := parseDate(form.CheckIn)
	checkOut, _ := parseDate(form.CheckOut)

	return domain.Booking{
		RoomID:    roomID,
		GuestName: form.GuestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, result
}

func guestNameLength(name string) int {
	return len(utf16.Encode([]rune(name)))
}

func validateDateField(result *ValidationResult, field, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		result.addFieldError(field, CodeRequired)
		return time.Time{}, false
	}

	date, err := parseDate(value)
	if err != nil {
		result.addFieldError(field, CodeInvalidDate)
		return time.Time{}, false
	}

	return date, true
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(date), nil
}
