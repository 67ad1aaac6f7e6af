package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер с указанным ID отсутствует
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateRoomID возвращается, когда начальный набор содержит повторяющиеся ID
	ErrDuplicateRoomID = errors.New("room.repository: duplicate room id")

	// ErrInvalidRoom возвращается, когда начальный набор содержит некорректный номер
	ErrInvalidRoom = errors.New("room.repository: invalid room")
)
