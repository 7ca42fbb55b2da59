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

	createAppointmentHandler "github.com/m04kA/SC-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SC-AppointmentService/internal/api/handlers/get_appointment"
	getBookedSlotsHandler "github.com/m04kA/SC-AppointmentService/internal/api/handlers/get_booked_slots"
	listServicesHandler "github.com/m04kA/SC-AppointmentService/internal/api/handlers/list_services"
	"github.com/m04kA/SC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SC-AppointmentService/internal/config"
	"github.com/m04kA/SC-AppointmentService/internal/engine/slotvalidator"
	appointmentRepo "github.com/m04kA/SC-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SC-AppointmentService/internal/mailer"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
	servicesService "github.com/m04kA/SC-AppointmentService/internal/service/services"
	createAppointmentUC "github.com/m04kA/SC-AppointmentService/internal/usecase/create_appointment"
	getAppointmentUC "github.com/m04kA/SC-AppointmentService/internal/usecase/get_appointment"
	getBookedSlotsUC "github.com/m04kA/SC-AppointmentService/internal/usecase/get_booked_slots"
	"github.com/m04kA/SC-AppointmentService/pkg/logger"
	"github.com/m04kA/SC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Политика часов работы и окна записи
	policyCfg, err := cfg.Booking.PolicyConfig()
	if err != nil {
		log.Fatal("Invalid booking policy: %v", err)
	}
	bookingPolicy, err := policy.New(policyCfg)
	if err != nil {
		log.Fatal("Invalid booking policy: %v", err)
	}
	log.Info("Booking policy: %s-%s %s, %d days in advance",
		cfg.Booking.OpenTime, cfg.Booking.CloseTime, cfg.Booking.Timezone, cfg.Booking.MaxAdvanceDays)

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

	// Почтовый клиент для писем-подтверждений
	mailClient, err := mailer.New(mailer.Config{
		Enabled:    cfg.Mail.Enabled,
		Host:       cfg.Mail.Host,
		Port:       cfg.Mail.Port,
		Username:   cfg.Mail.Username,
		Password:   cfg.Mail.Password,
		From:       cfg.Mail.From,
		AdminEmail: cfg.Mail.AdminEmail,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer: %v", err)
	}

	// Инициализируем репозитории и транзакционный менеджер
	appointmentRepository := appointmentRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы и use cases
	slotValidator := slotvalidator.New(bookingPolicy)
	servicesCatalog := servicesService.NewService(serviceRepository, log)

	// Интерфейс бизнес-метрик остаётся nil при выключенных метриках
	var bookingMetrics createAppointmentUC.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		slotValidator,
		txMgr,
		mailClient,
		bookingMetrics,
		log,
	)
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(appointmentRepository, bookingPolicy, log)
	getAppointmentUseCase := getAppointmentUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, cfg.Booking.RedirectTarget, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(getAppointmentUseCase, log)
	listServices := listServicesHandler.NewHandler(servicesCatalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты страницы записи
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/booked", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{reference}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

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
