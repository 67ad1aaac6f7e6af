package get_rooms

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// Request модель запроса на получение списка номеров
type Request struct {
	Filter domain.RoomFilter
}

// Response отфильтрованный и отсортированный список номеров
type Response struct {
	Rooms []domain.Room
	Total int // Количество номеров в хранилище до фильтрации
}
