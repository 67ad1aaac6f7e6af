package domain

import "strings"

// RoomCategory категория номера
type RoomCategory string

const (
	CategorySingle RoomCategory = "Single"
	CategoryDouble RoomCategory = "Double"
	CategorySuite  RoomCategory = "Suite"
	CategoryTwin   RoomCategory = "Twin"
)

// Categories список всех известных категорий номеров
var Categories = []RoomCategory{
	CategorySingle,
	CategoryDouble,
	CategorySuite,
	CategoryTwin,
}

// IsValid returns true if the category is one of the known categories
func (c RoomCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Room represents a bookable unit
type Room struct {
	ID        int64
	Name      string
	Category  RoomCategory
	Price     float64
	Available bool
}

// MatchesSearch returns true if term is a case-insensitive substring of the room name
// or of its category label. An empty term matches every room.
func (r *Room) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(string(r.Category)), term)
}

// CloneRooms возвращает независимую копию списка номеров
func CloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return []Room{}
	}
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}
