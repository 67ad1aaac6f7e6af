package get_room

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store, err := room.NewRepository(domain.SeedRooms(), 0, 0)
	require.NoError(t, err)

	h := NewHandler(rooms.NewService(store, nopLogger{}), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rooms/{roomId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/201", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.RoomResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, models.RoomResponse{ID: 201, Name: "201", Category: "Single", Price: 110, Available: false}, body)
}

func TestHandler_Handle_Errors(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/v1/rooms/999", want: http.StatusNotFound},
		{path: "/api/v1/rooms/abc", want: http.StatusBadRequest},
		{path: "/api/v1/rooms/0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
