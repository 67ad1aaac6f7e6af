package book_room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation возвращается, когда форма бронирования не прошла валидацию
	ErrValidation = errors.New("book_room: validation failed")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("book_room: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных вне формы
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)

// ValidationError содержит подробный результат валидации формы
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Result.FieldErrors)+len(e.Result.FormErrors))

	fields := make([]string, 0, len(e.Result.FieldErrors))
	for field := range e.Result.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Result.FieldErrors[field], ",")))
	}
	parts = append(parts, e.Result.FormErrors...)

	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
