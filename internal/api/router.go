package api

import (
	"net/http"

	"github.com/gorilla/mux"

	bookRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/book_room"
	dismissNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/dismiss_notification"
	getNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_notification"
	getRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room"
	getRoomsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_rooms"
	validateBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

// Handlers набор обработчиков API
type Handlers struct {
	GetRooms            *getRoomsHandler.Handler
	GetRoom             *getRoomHandler.Handler
	BookRoom            *bookRoomHandler.Handler
	ValidateBooking     *validateBookingHandler.Handler
	GetNotification     *getNotificationHandler.Handler
	DismissNotification *dismissNotificationHandler.Handler
}

// RouterConfig параметры роутера. Metrics может быть nil, тогда метрики отключены.
type RouterConfig struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	Logger      middleware.Logger
}

// NewRouter настраивает маршруты API
func NewRouter(h Handlers, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Metrics endpoint и middleware (если метрики включены)
	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера ---
	api.HandleFunc("/rooms", h.GetRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", h.GetRoom.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// validate регистрируется отдельным путем, поэтому порядок не важен
	api.HandleFunc("/bookings", h.BookRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/validate", h.ValidateBooking.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	api.HandleFunc("/notifications/current", h.GetNotification.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/current", h.DismissNotification.Handle).Methods(http.MethodDelete)

	return r
}
