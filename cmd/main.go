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
	_ "github.com/lib/pq"

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/complete_appointment"
	computeTotalsHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/compute_totals"
	confirmAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/get_appointment"
	getBusinessHoursHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/get_business_hours"
	getFreeSlotsHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/get_free_slots"
	getPriceHeatmapHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/get_price_heatmap"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/list_appointments"
	recommendedBundlesHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/recommended_bundles"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/reschedule_appointment"
	resetBusinessHoursHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/reset_business_hours"
	suggestPriceHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/suggest_price"
	updateBusinessHoursHandler "github.com/m04kA/SMC-SalonAdmin/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-SalonAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAdmin/internal/config"
	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/SMC-SalonAdmin/internal/infra/storage/settings"
	planServiceClient "github.com/m04kA/SMC-SalonAdmin/internal/integrations/planservice"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"
	appointmentsService "github.com/m04kA/SMC-SalonAdmin/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonAdmin/internal/service/catalog"
	settingsService "github.com/m04kA/SMC-SalonAdmin/internal/service/settings"
	computeTotalsUC "github.com/m04kA/SMC-SalonAdmin/internal/usecase/compute_totals"
	createAppointmentUC "github.com/m04kA/SMC-SalonAdmin/internal/usecase/create_appointment"
	getFreeSlotsUC "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_free_slots"
	getPriceHeatmapUC "github.com/m04kA/SMC-SalonAdmin/internal/usecase/get_price_heatmap"
	rescheduleAppointmentUC "github.com/m04kA/SMC-SalonAdmin/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SalonAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
	"github.com/m04kA/SMC-SalonAdmin/pkg/metrics"
	"github.com/m04kA/SMC-SalonAdmin/pkg/txmanager"
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

	log.Info("Starting SMC-SalonAdmin...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Invalid salon timezone %q: %v", cfg.Salon.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	planClient := planServiceClient.NewClient(
		cfg.PlanService.URL,
		time.Duration(cfg.PlanService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PlanService=%s timeout=%ds)",
		cfg.PlanService.URL, cfg.PlanService.Timeout)

	upsellEngine := upsell.NewEngine(nil)

	// Инициализируем сервисы
	defaultHours := domain.BusinessHours{
		OpenHour:  cfg.Salon.DefaultOpenHour,
		CloseHour: cfg.Salon.DefaultCloseHour,
		Location:  location,
	}
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txManager, location, log)
	settingsSvc := settingsService.NewService(settingsRepository, txManager, defaultHours, log)
	catalogSvc := catalogService.NewService(catalogRepository, upsellEngine, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsSvc,
		txManager,
		metricsCollector,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsSvc,
		txManager,
		metricsCollector,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		appointmentRepository,
		settingsSvc,
		cfg.Salon.SlotStepMinutes,
		log,
	)
	computeTotalsUseCase := computeTotalsUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		planClient,
		upsellEngine,
		metricsCollector,
		log,
	)
	getPriceHeatmapUseCase := getPriceHeatmapUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		planClient,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	computeTotals := computeTotalsHandler.NewHandler(computeTotalsUseCase, log)
	recommendedBundles := recommendedBundlesHandler.NewHandler(catalogSvc, log)
	getPriceHeatmap := getPriceHeatmapHandler.NewHandler(getPriceHeatmapUseCase, log)
	suggestPrice := suggestPriceHandler.NewHandler(log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(settingsSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(settingsSvc, log)
	resetBusinessHours := resetBusinessHoursHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные окна ресурса
	api.HandleFunc("/resources/{resourceId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Рекомендованные комплексы к услуге
	api.HandleFunc("/services/{serviceId}/bundles/recommended", recommendedBundles.Handle).Methods(http.MethodGet)

	// Рабочие часы
	api.HandleFunc("/settings/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/move", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Апсейл и цены (тариф проверяется в use case) ---
	protected.HandleFunc("/bookings/totals", computeTotals.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pricing/heatmap", getPriceHeatmap.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pricing/suggest", suggestPrice.Handle).Methods(http.MethodPost)

	// --- Настройки салона ---
	protected.HandleFunc("/settings/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings/business-hours/{resourceId}", resetBusinessHours.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
