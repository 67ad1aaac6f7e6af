package domain

// CategoryFilter фильтр по категории: "All" или конкретная категория
type CategoryFilter string

// CategoryAll отключает фильтрацию по категории
const CategoryAll CategoryFilter = "All"

// IsValid returns true for "All" or any known room category
func (f CategoryFilter) IsValid() bool {
	return f == CategoryAll || RoomCategory(f).IsValid()
}

// Matches returns true if the room category passes the filter
func (f CategoryFilter) Matches(c RoomCategory) bool {
	return f == CategoryAll || RoomCategory(f) == c
}

// SortOrder порядок сортировки по цене
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid returns true if the sort order is known
func (s SortOrder) IsValid() bool {
	return s == SortNone || s == SortAsc || s == SortDesc
}

// RoomFilter критерии фильтрации списка номеров
type RoomFilter struct {
	SearchTerm    string         // Подстрока для поиска по названию или категории
	MaxPrice      float64        // Верхняя граница цены (включительно)
	Category      CategoryFilter // "All" или конкретная категория
	AvailableOnly bool           // Только свободные номера
	SortOrder     SortOrder      // Сортировка по цене
}

// DefaultRoomFilter возвращает фильтр, пропускающий все номера с ценой до DefaultMaxPrice
func DefaultRoomFilter() RoomFilter {
	return RoomFilter{
		MaxPrice:  DefaultMaxPrice,
		Category:  CategoryAll,
		SortOrder: SortNone,
	}
}

// Matches returns true if the room satisfies all four predicates of the filter
func (f *RoomFilter) Matches(r *Room) bool {
	return r.MatchesSearch(f.SearchTerm) &&
		r.Price <= f.MaxPrice &&
		f.Category.Matches(r.Category) &&
		(!f.AvailableOnly || r.Available)
}
