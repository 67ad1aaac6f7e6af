package book_room

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
	bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
)

// BookRoomRequest HTTP request model
type BookRoomRequest struct {
	RoomID    int64  `json:"roomId"`
	GuestName string `json:"guestName"`
	CheckIn   string `json:"checkIn"`  // "2025-01-01"
	CheckOut  string `json:"checkOut"` // "2025-01-02"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success   bool                  `json:"success"`
	RoomID    int64                 `json:"roomId"`
	GuestName string                `json:"guestName"`
	CheckIn   string                `json:"checkIn"`
	CheckOut  string                `json:"checkOut"`
	Nights    int                   `json:"nights"`
	Room      models.RoomResponse   `json:"room"`
	Rooms     []models.RoomResponse `json:"rooms"`
}

// ValidationErrorResponse ответ при невалидной форме
type ValidationErrorResponse struct {
	Code        int                 `json:"code"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors"`
	FormErrors  []string            `json:"formErrors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRoomRequest) ToUseCaseRequest() *bookRoom.Request {
	return &bookRoom.Request{
		RoomID: r.RoomID,
		Form: bookRoom.Form{
			GuestName: r.GuestName,
			CheckIn:   r.CheckIn,
			CheckOut:  r.CheckOut,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookingResponse {
	return &BookingResponse{
		Success:   resp.Success,
		RoomID:    resp.Booking.RoomID,
		GuestName: resp.Booking.GuestName,
		CheckIn:   resp.Booking.CheckIn.Format(domain.DateFormat),
		CheckOut:  resp.Booking.CheckOut.Format(domain.DateFormat),
		Nights:    resp.Nights,
		Room:      *models.FromDomainRoom(&resp.Room),
		Rooms:     models.FromDomainRoomList(resp.Rooms, len(resp.Rooms)).Rooms,
	}
}

// FromValidationResult конвертирует результат валидации в HTTP response
func FromValidationResult(result bookRoom.ValidationResult, message string) *ValidationErrorResponse {
	fieldErrors := result.FieldErrors
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	formErrors := result.FormErrors
	if formErrors == nil {
		formErrors = []string{}
	}
	return &ValidationErrorResponse{
		Code:        http.StatusUnprocessableEntity,
		Message:     message,
		FieldErrors: fieldErrors,
		FormErrors:  formErrors,
	}
}
