package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/clients"
	createSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_parking_session"
	getDashboardHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_dashboard"
	getSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_parking_session"
	healthHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health"
	listSessionsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_parking_sessions"
	spacesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/parking_spaces"
	paymentsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/payments"
	referencesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/references"
	reportsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reports"
	tariffsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/tariffs"
	updateSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_parking_session"
	vehiclesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/vehicles"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	clientRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/client"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_space"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	referenceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reference"
	reportRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/report"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	clientsService "github.com/m04kA/SMC-ParkingService/internal/service/clients"
	spacesService "github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces"
	paymentsService "github.com/m04kA/SMC-ParkingService/internal/service/payments"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	referencesService "github.com/m04kA/SMC-ParkingService/internal/service/references"
	reportsService "github.com/m04kA/SMC-ParkingService/internal/service/reports"
	sessionsService "github.com/m04kA/SMC-ParkingService/internal/service/sessions"
	tariffsService "github.com/m04kA/SMC-ParkingService/internal/service/tariffs"
	vehiclesService "github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
	createSessionUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_session"
	getDashboardUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
	updateSessionUC "github.com/m04kA/SMC-ParkingService/internal/usecase/update_parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// storage то, что нужно репозиториям и health-check от *sql.DB или обёртки с метриками
type storage interface {
	dbmetrics.DBExecutor
	PingContext(ctx context.Context) error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file (.toml, .yaml)")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Подключаемся к базе данных (драйвер lib/pq или pgx)
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Метрики: обёртка над БД собирает длительность запросов и статистику пула
	var (
		metricsCollector *metrics.Metrics
		store            storage = db
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		store = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	txMgr := txmanager.New(store)

	// Репозитории
	sessionRepository := sessionRepo.NewRepository(store)
	tariffRepository := tariffRepo.NewRepository(store)
	spaceRepository := spaceRepo.NewRepository(store)
	clientRepository := clientRepo.NewRepository(store)
	vehicleRepository := vehicleRepo.NewRepository(store)
	paymentRepository := paymentRepo.NewRepository(store)
	referenceRepository := referenceRepo.NewRepository(store)
	reportRepository := reportRepo.NewRepository(store)

	// Сервисы
	calculator := pricing.NewCalculator(tariffRepository, log)
	sessionsSvc := sessionsService.NewService(sessionRepository, log)
	reportsSvc := reportsService.NewService(reportRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	spacesSvc := spacesService.NewService(spaceRepository, log)
	tariffsSvc := tariffsService.NewService(tariffRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, sessionRepository, txMgr, log)
	referencesSvc := referencesService.NewService(referenceRepository, log)

	// Use cases
	createSessionUseCase := createSessionUC.NewUseCase(sessionRepository, calculator, txMgr, log)
	updateSessionUseCase := updateSessionUC.NewUseCase(sessionRepository, calculator, txMgr, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(reportRepository, log)

	// Handlers
	health := healthHandler.NewHandler(store, log)
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	updateSession := updateSessionHandler.NewHandler(updateSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	listSessions := listSessionsHandler.NewHandler(sessionsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	reports := reportsHandler.NewHandler(reportsSvc, log)
	clients := clientsHandler.NewHandler(clientsSvc, log)
	vehicles := vehiclesHandler.NewHandler(vehiclesSvc, log)
	spaces := spacesHandler.NewHandler(spacesSvc, log)
	tariffs := tariffsHandler.NewHandler(tariffsSvc, log)
	payments := paymentsHandler.NewHandler(paymentsSvc, log)
	references := referencesHandler.NewHandler(referencesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// READ ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/parking-sessions", listSessions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-sessions/{id}", getSession.Handle).Methods(http.MethodGet)

	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/parking-spaces", spaces.List).Methods(http.MethodGet)
	api.HandleFunc("/parking-spaces/{id}", spaces.Get).Methods(http.MethodGet)
	api.HandleFunc("/tariffs", tariffs.List).Methods(http.MethodGet)
	api.HandleFunc("/tariffs/{id}", tariffs.Get).Methods(http.MethodGet)
	api.HandleFunc("/payments", payments.List).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", payments.Get).Methods(http.MethodGet)

	api.HandleFunc("/references/vehicle-types", references.VehicleTypes).Methods(http.MethodGet)
	api.HandleFunc("/references/payment-methods", references.PaymentMethods).Methods(http.MethodGet)

	api.HandleFunc("/reports/revenue", reports.Revenue).Methods(http.MethodGet)
	api.HandleFunc("/reports/sessions", reports.Sessions).Methods(http.MethodGet)
	api.HandleFunc("/reports/average-check", reports.AverageCheck).Methods(http.MethodGet)
	api.HandleFunc("/reports/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// ============================================================
	// WRITE ROUTES (JWT, если auth.enabled)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.JWTSecret))
		log.Info("JWT authentication enabled for write routes")
	}

	// --- Парковочные сессии ---
	// Въезд (и, опционально, сразу выезд)
	protected.HandleFunc("/parking-sessions", createSession.Handle).Methods(http.MethodPost)
	// Корректировка и выезд с пересчётом стоимости
	protected.HandleFunc("/parking-sessions/{id}", updateSession.Handle).Methods(http.MethodPut)

	// --- Справочные сущности ---
	protected.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id}", clients.Update).Methods(http.MethodPut)

	protected.HandleFunc("/vehicles", vehicles.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{id}", vehicles.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id}", vehicles.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/parking-spaces", spaces.Create).Methods(http.MethodPost)
	protected.HandleFunc("/parking-spaces/{id}", spaces.Update).Methods(http.MethodPut)
	protected.HandleFunc("/parking-spaces/{id}", spaces.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/tariffs", tariffs.Create).Methods(http.MethodPost)
	protected.HandleFunc("/tariffs/{id}", tariffs.Update).Methods(http.MethodPut)
	protected.HandleFunc("/tariffs/{id}", tariffs.Delete).Methods(http.MethodDelete)

	// --- Платежи ---
	protected.HandleFunc("/payments", payments.Create).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}", payments.Update).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
