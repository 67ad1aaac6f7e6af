package get_rooms

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// FilterRooms строит отфильтрованное и отсортированное представление списка.
//
// Чистая функция: результат зависит только от (rooms, filter), входной слайс
// не изменяется. Если ничего не подошло, возвращается пустой (не nil) слайс.
// Сортировка стабильная, при SortNone сохраняется порядок хранилища.
func FilterRooms(rooms []domain.Room, filter domain.RoomFilter) []domain.Room {
	result := make([]domain.Room, 0, len(rooms))
	for i := range rooms {
		if filter.Matches(&rooms[i]) {
			result = append(result, rooms[i])
		}
	}

	switch filter.SortOrder {
	case domain.SortAsc:
		slices.SortStableFunc(result, func(a, b domain.Room) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortDesc:
		slices.SortStableFunc(result, func(a, b domain.Room) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}

	return result
}
