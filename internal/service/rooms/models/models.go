package models

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Count int            `json:"count"`
	Total int            `json:"total"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Category:  string(r.Category),
		Price:     r.Price,
		Available: r.Available,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []domain.Room, total int) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, len(rooms)),
		Count: len(rooms),
		Total: total,
	}
	for i := range rooms {
		resp.Rooms[i] = *FromDomainRoom(&rooms[i])
	}
	return resp
}
