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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/create_booking"
	deleteAppointmentHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/delete_appointment"
	getAgendaSettingsHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/get_agenda_settings"
	getAppointmentHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/get_available_slots"
	getBusinessAppointmentsHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/get_business_appointments"
	rescheduleAppointmentHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/reschedule_appointment"
	resolveBookingLinkHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/resolve_booking_link"
	servicesHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/services"
	stylistsHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/stylists"
	updateAgendaSettingsHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/update_agenda_settings"
	updateStatusHandler "github.com/salonhub/SH-BookingService/internal/api/handlers/update_appointment_status"
	"github.com/salonhub/SH-BookingService/internal/api/middleware"
	"github.com/salonhub/SH-BookingService/internal/config"
	"github.com/salonhub/SH-BookingService/internal/infra/slotlock"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	appointmentRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	customerRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/customer"
	businessServiceClient "github.com/salonhub/SH-BookingService/internal/integrations/businessservice"
	mailServiceClient "github.com/salonhub/SH-BookingService/internal/integrations/mailservice"
	agendaService "github.com/salonhub/SH-BookingService/internal/service/agenda"
	appointmentsService "github.com/salonhub/SH-BookingService/internal/service/appointments"
	catalogService "github.com/salonhub/SH-BookingService/internal/service/catalog"
	createBookingUC "github.com/salonhub/SH-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/salonhub/SH-BookingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/salonhub/SH-BookingService/internal/usecase/reschedule_appointment"
	"github.com/salonhub/SH-BookingService/pkg/dbmetrics"
	"github.com/salonhub/SH-BookingService/pkg/logger"
	"github.com/salonhub/SH-BookingService/pkg/metrics"
	"github.com/salonhub/SH-BookingService/pkg/simpletxmanager"
	"github.com/salonhub/SH-BookingService/pkg/txmanager"
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

	log.Info("Starting SH-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Распределённая блокировка слотов через Redis (если включена)
	var locker createBookingUC.SlotLocker
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancelPing()
		defer redisClient.Close()

		locker = slotlock.NewRedisLocker(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Second)
		log.Info("Redis slot locking enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		locker = slotlock.NewNoopLocker()
		log.Info("Redis slot locking disabled, relying on serializable transactions only")
	}

	// Инициализируем интеграционных клиентов
	businessClient := businessServiceClient.NewClient(
		cfg.BusinessService.URL,
		time.Duration(cfg.BusinessService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BusinessService=%s timeout=%ds, MailService=%s timeout=%ds)",
		cfg.BusinessService.URL, cfg.BusinessService.Timeout, cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		agendaRepository      *agendaRepo.Repository
		serviceRepository     *catalogRepo.ServiceRepository
		stylistRepository     *catalogRepo.StylistRepository
	)

	var txMgr createBookingUC.TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		agendaRepository = agendaRepo.NewRepository(wrappedDB)
		serviceRepository = catalogRepo.NewServiceRepository(wrappedDB)
		stylistRepository = catalogRepo.NewStylistRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		agendaRepository = agendaRepo.NewRepository(db)
		serviceRepository = catalogRepo.NewServiceRepository(db)
		stylistRepository = catalogRepo.NewStylistRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		customerRepository,
		businessClient,
		log,
	)
	agendaSvc := agendaService.NewService(
		agendaRepository,
		businessClient,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		stylistRepository,
		businessClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		agendaRepository,
		serviceRepository,
		stylistRepository,
		businessClient,
		mailClient,
		txMgr,
		locker,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		agendaRepository,
		serviceRepository,
		stylistRepository,
		businessClient,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		agendaRepository,
		stylistRepository,
		businessClient,
		txMgr,
		locker,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAgendaSettings := getAgendaSettingsHandler.NewHandler(agendaSvc, log)
	updateAgendaSettings := updateAgendaSettingsHandler.NewHandler(agendaSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	stylists := stylistsHandler.NewHandler(catalogSvc, log)
	resolveBookingLink := resolveBookingLinkHandler.NewHandler(businessClient, catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная страница бронирования по ссылке салона
	r.HandleFunc("/book/{bookingLink}", resolveBookingLink.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Заголовок X-User-ID на публичных роутах опционален:
	// владелец видит в каталоге неактивные услуги и скрытых мастеров
	api.Use(middleware.OptionalAuth)

	// Сетка доступных слотов
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичное бронирование
	api.HandleFunc("/public/bookings", createBooking.HandlePublic).Methods(http.MethodPost)

	// Каталог (публичный доступ отдаёт только активные услуги и публичных мастеров)
	api.HandleFunc("/businesses/{businessId}/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/stylists", stylists.HandleList).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи владельцем
	protected.HandleFunc("/appointments", createBooking.HandleInternal).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи на другой слот
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// Мягкая отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Безвозвратное удаление записи
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Записи бизнеса с фильтрацией
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)

	// --- Настройки расписания ---
	protected.HandleFunc("/businesses/{businessId}/agenda-settings", getAgendaSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/agenda-settings", updateAgendaSettings.Handle).Methods(http.MethodPut)

	// --- Каталог ---
	protected.HandleFunc("/businesses/{businessId}/services", services.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/stylists", stylists.HandleCreate).Methods(http.MethodPost)

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
