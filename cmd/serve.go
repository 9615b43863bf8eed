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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	clearPhotoHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/clear_photo"
	commitEmailHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/commit_email"
	createSessionHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/create_session"
	getCalendarHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/get_calendar"
	getHolidaysHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/get_holidays"
	getSessionHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/get_session"
	navigateMonthHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/navigate_month"
	selectDateHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/select_date"
	selectTimeHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/select_time"
	submitApplicationHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/submit_application"
	updateFieldsHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/update_fields"
	uploadPhotoHandler "github.com/m04kA/SMC-WorkoutForm/internal/api/handlers/upload_photo"
	"github.com/m04kA/SMC-WorkoutForm/internal/api/middleware"
	"github.com/m04kA/SMC-WorkoutForm/internal/config"
	applicationRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/application"
	sessionRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/holidayapi"
	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/submission"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/holidays"
	sessionsService "github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
	submitApplicationUC "github.com/m04kA/SMC-WorkoutForm/internal/usecase/submit_application"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
	"github.com/m04kA/SMC-WorkoutForm/pkg/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API (команда по умолчанию)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-WorkoutForm...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Form.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал попыток отправки (если включен)
	var recorder submitApplicationUC.AttemptRecorder
	if cfg.Database.Enabled {
		db, err := openDB(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		recorder = applicationRepo.NewRepository(db)
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Info("Database disabled, submission attempts are not recorded")
	}

	// Инициализируем интеграционных клиентов
	holidayClient := holidayapi.NewClient(
		cfg.HolidayAPI.URL,
		cfg.HolidayAPI.APIKey,
		time.Duration(cfg.HolidayAPI.Timeout)*time.Second,
		log,
	)
	submissionClient := submission.NewClient(
		cfg.Submission.URL,
		time.Duration(cfg.Submission.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (HolidayAPI=%s timeout=%ds, Submission=%s timeout=%ds)",
		cfg.HolidayAPI.URL, cfg.HolidayAPI.Timeout, cfg.Submission.URL, cfg.Submission.Timeout)

	// Праздники грузятся один раз в фоне; до загрузки календарь работает в режиме fail-open
	holidaySource := holidays.NewSource(holidayClient, cfg.HolidayAPI.Country, metricsCollector, log)
	loadCtx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()
	go func() {
		_ = holidaySource.Load(loadCtx, time.Now().In(location).Year())
	}()

	// Инициализируем хранилище, сервисы и use cases
	sessionRepository := sessionRepo.NewRepository()
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		holidaySource,
		metricsCollector,
		log,
		cfg.Form.DebounceDelay(),
		location,
	)
	submitUseCase := submitApplicationUC.NewUseCase(
		sessionRepository,
		submissionClient,
		recorder,
		metricsCollector,
		log,
	)

	// Удаляем простаивающие сессии
	sessionTTL := time.Duration(cfg.Form.SessionTTL) * time.Second
	stopSweep := make(chan struct{})
	go sweepSessions(sessionSvc, sessionTTL, stopSweep)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateFields := updateFieldsHandler.NewHandler(sessionSvc, log)
	commitEmail := commitEmailHandler.NewHandler(sessionSvc, log)
	uploadPhoto := uploadPhotoHandler.NewHandler(sessionSvc, cfg.Form.MaxPhotoBytes, log)
	clearPhoto := clearPhotoHandler.NewHandler(sessionSvc, log)
	navigateMonth := navigateMonthHandler.NewHandler(sessionSvc, log)
	selectDate := selectDateHandler.NewHandler(sessionSvc, log)
	selectTime := selectTimeHandler.NewHandler(sessionSvc, log)
	submitApplication := submitApplicationHandler.NewHandler(submitUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(sessionSvc, log)
	getHolidays := getHolidaysHandler.NewHandler(holidaySource, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь и праздники ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", getHolidays.Handle).Methods(http.MethodGet)

	// --- Сессии формы ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/fields", updateFields.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/email/commit", commitEmail.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/photo", uploadPhoto.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/photo", clearPhoto.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/calendar/navigate", navigateMonth.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/calendar/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/calendar/time", selectTime.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/submit", submitApplication.Handle).Methods(http.MethodPost)

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
	close(stopSweep)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// sweepSessions раз в минуту (но не реже ttl) удаляет простаивающие сессии
func sweepSessions(svc *sessionsService.Service, ttl time.Duration, stop <-chan struct{}) {
	interval := time.Minute
	if ttl < interval {
		interval = ttl
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.PurgeIdle(ttl)
		case <-stop:
			return
		}
	}
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
