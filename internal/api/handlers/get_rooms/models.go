package get_rooms

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
	getRooms "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_rooms"
)

// Query параметры запроса
const (
	paramSearch        = "search"
	paramMaxPrice      = "maxPrice"
	paramCategory      = "category"
	paramAvailableOnly = "availableOnly"
	paramSort          = "sort"
)

// ToUseCaseRequest создает запрос use case из query параметров.
// Отсутствующие параметры заменяются значениями по умолчанию.
func ToUseCaseRequest(q url.Values) (*getRooms.Request, error) {
	filter := domain.DefaultRoomFilter()
	filter.SearchTerm = q.Get(paramSearch)

	if v := q.Get(paramMaxPrice); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramMaxPrice, err)
		}
		filter.MaxPrice = price
	}

	if v := q.Get(paramCategory); v != "" {
		filter.Category = domain.CategoryFilter(v)
	}

	if v := q.Get(paramAvailableOnly); v != "" {
		only, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramAvailableOnly, err)
		}
		filter.AvailableOnly = only
	}

	if v := q.Get(paramSort); v != "" {
		filter.SortOrder = domain.SortOrder(v)
	}

	return &getRooms.Request{Filter: filter}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRooms.Response) *models.RoomListResponse {
	return models.FromDomainRoomList(resp.Rooms, resp.Total)
}
