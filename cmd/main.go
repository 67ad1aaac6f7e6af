package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/api"
	bookRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/book_room"
	dismissNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/dismiss_notification"
	getNotificationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_notification"
	getRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room"
	getRoomsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_rooms"
	validateBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	notificationsService "github.com/m04kA/SMC-RoomBooking/internal/service/notifications"
	roomsService "github.com/m04kA/SMC-RoomBooking/internal/service/rooms"
	bookRoomUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
	getRoomsUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_rooms"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище номеров
	var seed []domain.Room
	if cfg.Store.Seed {
		seed = domain.SeedRooms()
	}
	roomRepository, err := roomRepo.NewRepository(seed, cfg.Store.ReadLatency(), cfg.Store.WriteLatency())
	if err != nil {
		log.Fatal("Failed to initialize room store: %v", err)
	}
	log.Info("Room store initialized (rooms=%d, read_latency=%s, write_latency=%s)",
		len(seed), cfg.Store.ReadLatency(), cfg.Store.WriteLatency())

	// Инициализируем сервисы
	notifierOpts := []notificationsService.Option{}
	if metricsCollector != nil {
		notifierOpts = append(notifierOpts, notificationsService.WithMetrics(metricsCollector))
	}
	notifier := notificationsService.NewService(cfg.Notifications.TTL(), log, notifierOpts...)
	roomSvc := roomsService.NewService(roomRepository, log)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if metricsCollector != nil {
		go roomSvc.WatchAvailability(watchCtx, metricsCollector)
	}

	// Инициализируем use cases
	// nil интерфейс, а не типизированный nil: use case проверяет observer на nil
	var bookingMetrics bookRoomUC.MetricsObserver
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}

	getRoomsUseCase := getRoomsUC.NewUseCase(roomRepository, log)
	bookRoomUseCase := bookRoomUC.NewUseCase(
		roomRepository,
		notifier,
		bookingMetrics,
		log,
	)

	// Инициализируем handlers и роутер
	r := api.NewRouter(api.Handlers{
		GetRooms:            getRoomsHandler.NewHandler(getRoomsUseCase, log),
		GetRoom:             getRoomHandler.NewHandler(roomSvc, log),
		BookRoom:            bookRoomHandler.NewHandler(bookRoomUseCase, log),
		ValidateBooking:     validateBookingHandler.NewHandler(bookRoomUseCase, log),
		GetNotification:     getNotificationHandler.NewHandler(notifier, log),
		DismissNotification: dismissNotificationHandler.NewHandler(notifier, log),
	}, api.RouterConfig{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем наблюдение за доступностью и активный таймер уведомления
	stopWatch()
	notifier.Dismiss()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
