package validate_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopNotifier struct{}

func (nopNotifier) Show(message string, severity ...domain.Severity) domain.Notification {
	return domain.Notification{Message: message}
}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := room.NewRepository(domain.SeedRooms(), 0, 0)
	require.NoError(t, err)
	return NewHandler(bookRoom.NewUseCase(store, nopNotifier{}, nil, nopLogger{}), nopLogger{})
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	h := newHandler(t)

	rec := post(h, `{"guestName":"","checkIn":"2025-01-02","checkOut":"2025-01-01","touched":["checkIn"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ValidateBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Valid)
	assert.False(t, body.CanSubmit)
	assert.Equal(t, []string{bookRoom.CodeRequired}, body.FieldErrors[bookRoom.FieldGuestName])
	assert.Empty(t, body.VisibleFieldErrors, "guestName was not touched yet")
	assert.Equal(t, []string{bookRoom.CodeDateRangeInvalid}, body.FormErrors)
}

func TestHandler_Handle_Valid(t *testing.T) {
	h := newHandler(t)

	rec := post(h, `{"guestName":"Jo","checkIn":"2025-01-01","checkOut":"2025-01-02"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ValidateBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Valid)
	assert.True(t, body.CanSubmit)
	assert.Empty(t, body.FormErrors)
}

func TestHandler_Handle_BadRequest(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusBadRequest, post(h, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"touched":["phone"]}`).Code)
}
