package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/delete_booking"
	getAllBookingsHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/get_all_bookings"
	getAvailabilityHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/login"
	mileageHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/mileage"
	reportsHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/reports"
	updateBookingHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/update_booking"
	usersHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/users"
	vehiclesHandler "github.com/fleetops/FMS-CarBookingService/internal/api/handlers/vehicles"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	"github.com/fleetops/FMS-CarBookingService/internal/config"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	availabilityCache "github.com/fleetops/FMS-CarBookingService/internal/infra/cache/availability"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	maintenanceRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/maintenance"
	mileageRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/mileage"
	userRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/user"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
	"github.com/fleetops/FMS-CarBookingService/internal/integrations/linenotify"
	bookingsService "github.com/fleetops/FMS-CarBookingService/internal/service/bookings"
	mileageService "github.com/fleetops/FMS-CarBookingService/internal/service/mileage"
	reportsService "github.com/fleetops/FMS-CarBookingService/internal/service/reports"
	usersService "github.com/fleetops/FMS-CarBookingService/internal/service/users"
	vehiclesService "github.com/fleetops/FMS-CarBookingService/internal/service/vehicles"
	createBookingUC "github.com/fleetops/FMS-CarBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/fleetops/FMS-CarBookingService/internal/usecase/get_availability"
	updateBookingUC "github.com/fleetops/FMS-CarBookingService/internal/usecase/update_booking"
	"github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"
	"github.com/fleetops/FMS-CarBookingService/pkg/logger"
	"github.com/fleetops/FMS-CarBookingService/pkg/metrics"
	"github.com/fleetops/FMS-CarBookingService/pkg/simpletxmanager"
	"github.com/fleetops/FMS-CarBookingService/pkg/txmanager"
)

func main() {
	// .env is optional, the file only exists in local development
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FMS-CarBookingService...")
	log.Info("Configuration loaded from config.toml")

	catalog, known := domain.CatalogByName(cfg.Booking.SlotCatalog)
	if !known {
		log.Warn("Unknown slot catalog %q, falling back to %q", cfg.Booking.SlotCatalog, catalog.Name())
	}
	log.Info("Slot catalog: %s (%d slots)", catalog.Name(), catalog.Len())

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis is optional: a nil client turns the availability cache into a
	// pass-through and the service reads the database on every request.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		defer redisClient.Close()
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		log.Info("Availability cache disabled, serving from database")
	}
	cache := availabilityCache.New(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)

	lineClient := linenotify.NewClient(cfg.Line.ChannelToken, cfg.Line.RatePerMin, log)
	if lineClient.Enabled() {
		log.Info("LINE broadcast notifications enabled (rate=%d/min)", cfg.Line.RatePerMin)
	} else {
		log.Info("LINE broadcast notifications disabled (no channel token)")
	}

	var (
		bookingRepository     *bookingRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		userRepository        *userRepo.Repository
		mileageRepository     *mileageRepo.Repository
		maintenanceRepository *maintenanceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		mileageRepository = mileageRepo.NewRepository(wrappedDB)
		maintenanceRepository = maintenanceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		mileageRepository = mileageRepo.NewRepository(db)
		maintenanceRepository = maintenanceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		mileageRepository,
		cache,
		catalog,
		log,
	)
	vehicleSvc := vehiclesService.NewService(
		vehicleRepository,
		maintenanceRepository,
		log,
	)
	userSvc := usersService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Second,
		log,
	)
	mileageSvc := mileageService.NewService(
		mileageRepository,
		bookingRepository,
		maintenanceRepository,
		log,
	)
	reportSvc := reportsService.NewService(
		bookingRepository,
		catalog,
		cfg.Reports.PDFFontPath,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		lineClient,
		cache,
		catalog,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		cache,
		catalog,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		cache,
		catalog,
		log,
	)

	// Handlers
	login := loginHandler.NewHandler(userSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	vehicles := vehiclesHandler.NewHandler(vehicleSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	mileage := mileageHandler.NewHandler(mileageSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Protected routes (valid JWT required)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/miles", mileage.RecordTrip).Methods(http.MethodPost)

	// Availability calendar
	protected.HandleFunc("/vehicles/{vehicleId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{vehicleId}", vehicles.Get).Methods(http.MethodGet)

	// Caller's own data
	protected.HandleFunc("/users/me", users.Me).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Personal mileage log
	protected.HandleFunc("/mileages", mileage.List).Methods(http.MethodGet)
	protected.HandleFunc("/mileages", mileage.Create).Methods(http.MethodPost)
	protected.HandleFunc("/mileages/{recordId}", mileage.Update).Methods(http.MethodPut)
	protected.HandleFunc("/mileages/{recordId}", mileage.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/vehicles", vehicles.Create).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{vehicleId}", vehicles.Update).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{vehicleId}", vehicles.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicles/{vehicleId}/maintenance", vehicles.SetMaintenance).Methods(http.MethodPut)
	admin.HandleFunc("/maintenance", vehicles.ListMaintenance).Methods(http.MethodGet)

	admin.HandleFunc("/users", users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{userId}", users.Update).Methods(http.MethodPut)

	admin.HandleFunc("/reports/usage", reports.Usage).Methods(http.MethodGet)
	admin.HandleFunc("/reports/usage/export", reports.Export).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
