package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/book_room"
	dismissNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/dismiss_notification"
	getNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_notification"
	getRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room"
	getRoomsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_rooms"
	validateBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/notifications"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
	bookRoomUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
	getRoomsUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_rooms"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	log := nopLogger{}
	m := metrics.New("test")

	store, err := room.NewRepository(domain.SeedRooms(), 0, 0)
	require.NoError(t, err)

	notifier := notifications.NewService(time.Minute, log, notifications.WithMetrics(m))
	roomSvc := rooms.NewService(store, log)
	getRooms := getRoomsUC.NewUseCase(store, log)
	bookRoom := bookRoomUC.NewUseCase(store, notifier, m, log)

	router := NewRouter(Handlers{
		GetRooms:            getRoomsHandler.NewHandler(getRooms, log),
		GetRoom:             getRoomHandler.NewHandler(roomSvc, log),
		BookRoom:            bookRoomHandler.NewHandler(bookRoom, log),
		ValidateBooking:     validateBookingHandler.NewHandler(bookRoom, log),
		GetNotification:     getNotificationHandler.NewHandler(notifier, log),
		DismissNotification: dismissNotificationHandler.NewHandler(notifier, log),
	}, RouterConfig{Metrics: m, MetricsPath: "/metrics", Logger: log})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, m
}

func getRoomList(t *testing.T, srv *httptest.Server, query string) models.RoomListResponse {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/v1/rooms" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.RoomListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRouter_BookingFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	before := getRoomList(t, srv, "?availableOnly=true&search=101")
	require.Len(t, before.Rooms, 1)

	// Одинаковые даты отклоняются
	resp, err := http.Post(srv.URL+"/api/v1/bookings", "application/json",
		strings.NewReader(`{"roomId":101,"guestName":"Jo","checkIn":"2025-01-01","checkOut":"2025-01-01"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/bookings", "application/json",
		strings.NewReader(`{"roomId":101,"guestName":"Jo","checkIn":"2025-01-01","checkOut":"2025-01-02"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	after := getRoomList(t, srv, "?availableOnly=true&search=101")
	assert.Empty(t, after.Rooms)

	resp, err = http.Get(srv.URL + "/api/v1/notifications/current")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n getNotificationHandler.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&n))
	assert.Equal(t, "SUCCESS", n.Severity)
	assert.Equal(t, "Room 101 reserved for Jo", n.Message)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/notifications/current", nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)
}

func TestRouter_Routes(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/api/v1/rooms/303", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/rooms/abc", want: http.StatusNotFound},
		{method: http.MethodPost, path: "/api/v1/bookings/validate", body: `{"guestName":"Jo"}`, want: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/notifications/current", want: http.StatusNoContent},
		{method: http.MethodGet, path: "/api/v1/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/bookings", "application/json",
		strings.NewReader(`{"roomId":102,"guestName":"Al","checkIn":"2025-03-01","checkOut":"2025-03-04"}`))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bookings_total{result="success",service="test"} 1`)
	assert.Contains(t, string(body), `notifications_total{service="test",severity="SUCCESS"} 1`)
	assert.Contains(t, string(body), `http_requests_total{method="POST",path="/api/v1/bookings",service="test",status="201"} 1`)
}
