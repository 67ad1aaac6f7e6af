package get_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных критериях фильтрации
	ErrInvalidInput = errors.New("get_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_rooms: internal error")
)
