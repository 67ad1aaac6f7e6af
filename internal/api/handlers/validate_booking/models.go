package validate_booking

import bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	GuestName string   `json:"guestName"`
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
	Touched   []string `json:"touched,omitempty"`
	Dirty     []string `json:"dirty,omitempty"`
}

// ValidateBookingResponse HTTP response model
type ValidateBookingResponse struct {
	Valid              bool                `json:"valid"`
	CanSubmit          bool                `json:"canSubmit"`
	FieldErrors        map[string][]string `json:"fieldErrors"`
	VisibleFieldErrors map[string][]string `json:"visibleFieldErrors"`
	FormErrors         []string            `json:"formErrors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest() *bookRoom.ValidateRequest {
	return &bookRoom.ValidateRequest{
		Form: bookRoom.Form{
			GuestName: r.GuestName,
			CheckIn:   r.CheckIn,
			CheckOut:  r.CheckOut,
		},
		Touched: r.Touched,
		Dirty:   r.Dirty,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.ValidateResponse) *ValidateBookingResponse {
	out := &ValidateBookingResponse{
		Valid:              resp.Result.Valid(),
		CanSubmit:          resp.CanSubmit,
		FieldErrors:        resp.Result.FieldErrors,
		VisibleFieldErrors: resp.VisibleFieldErrors,
		FormErrors:         resp.Result.FormErrors,
	}
	if out.FieldErrors == nil {
		out.FieldErrors = map[string][]string{}
	}
	if out.VisibleFieldErrors == nil {
		out.VisibleFieldErrors = map[string][]string{}
	}
	if out.FormErrors == nil {
		out.FormErrors = []string{}
	}
	return out
}
