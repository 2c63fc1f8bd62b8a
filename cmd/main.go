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
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	cupoHandoffHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/cupo_handoff"
	createPassengerHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/create_passenger"
	getCalendarHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/get_calendar"
	getCupoHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/get_cupo"
	getPassengerHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/get_passenger"
	listCompanionsHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/list_companions"
	passengerDraftsHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/passenger_drafts"
	promoteCompanionHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/promote_companion"
	validatePassengerHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/validate_passenger"
	"github.com/m04kA/SMC-TravelDesk/internal/api/middleware"
	"github.com/m04kA/SMC-TravelDesk/internal/api/ws"
	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/config"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	cupoRepo "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/cupo"
	draftStore "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/draft"
	passengerRepo "github.com/m04kA/SMC-TravelDesk/internal/infra/storage/passenger"
	fileServiceClient "github.com/m04kA/SMC-TravelDesk/internal/integrations/fileservice"
	"github.com/m04kA/SMC-TravelDesk/internal/jobs"
	cuposService "github.com/m04kA/SMC-TravelDesk/internal/service/cupos"
	draftsService "github.com/m04kA/SMC-TravelDesk/internal/service/drafts"
	passengersService "github.com/m04kA/SMC-TravelDesk/internal/service/passengers"
	createPassengerUC "github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
	getCalendarUC "github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-TravelDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-TravelDesk/pkg/logger"
	"github.com/m04kA/SMC-TravelDesk/pkg/metrics"
	"github.com/m04kA/SMC-TravelDesk/pkg/txmanager"
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

	log.Info("Starting SMC-TravelDesk...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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

	// Обертка с метриками запросов; без метрик observer nil-safe
	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	txMgr := txmanager.New(wrappedDB)

	// Хранилище черновиков: Redis, если настроен, иначе память процесса
	draftTTL := time.Duration(cfg.Drafts.TTLMinutes) * time.Minute
	var drafts draftsService.DraftStore
	var draftPurge *jobs.DraftPurge
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		drafts = draftStore.NewRedisStore(redisClient, cfg.Redis.Namespace, draftTTL)
		log.Info("Draft store: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, draftTTL)
	} else {
		memoryDrafts := draftStore.NewMemoryStore(draftTTL)
		draftPurge = jobs.NewDraftPurge(cfg.Jobs.DraftPurgeCron, memoryDrafts, log)
		if err := draftPurge.Start(); err != nil {
			log.Fatal("Failed to start draft purge job: %v", err)
		}
		drafts = memoryDrafts
		log.Warn("Draft store: in-memory (ttl=%s), drafts are lost on restart", draftTTL)
	}

	// Инициализируем интеграционных клиентов
	fileClient := fileServiceClient.NewClient(
		cfg.FileService.URL,
		time.Duration(cfg.FileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FileService=%s timeout=%ds)",
		cfg.FileService.URL, cfg.FileService.Timeout)

	// Инициализируем репозитории
	passengerRepository := passengerRepo.NewRepository(wrappedDB)
	cupoRepository := cupoRepo.NewRepository(wrappedDB)

	// Календарь
	locale, err := language.Parse(cfg.Calendar.Locale)
	if err != nil {
		log.Warn("Unknown calendar locale %q, falling back to en-US: %v", cfg.Calendar.Locale, err)
		locale = language.AmericanEnglish
	}
	materializer := calendar.NewMaterializer(calendar.Options{
		MonthCellCap: cfg.Calendar.MonthCellCap,
		Thresholds: domain.AvailabilityThresholds{
			LowBelow:     cfg.Calendar.LowAvailabilityBelow,
			LimitedBelow: cfg.Calendar.LimitedAvailabilityBelow,
		},
		Locale: locale,
	})

	// Инициализируем use cases
	createPassengerUseCase := createPassengerUC.NewUseCase(
		passengerRepository,
		fileClient,
		txMgr,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		cupoRepository,
		materializer,
		log,
	)

	// Инициализируем сервисы
	passengerSvc := passengersService.NewService(passengerRepository, txMgr, log)
	cupoSvc := cuposService.NewService(cupoRepository, materializer, log)
	draftSvc := draftsService.NewService(drafts, createPassengerUseCase, log)

	// Фоновая задача завершения прошедших cupos
	completion := jobs.NewCupoCompletion(cfg.Jobs.CupoCompletionCron, cupoRepository, metricsCollector, log)
	if err := completion.Start(); err != nil {
		log.Fatal("Failed to start cupo completion job: %v", err)
	}

	// Инициализируем handlers
	validatePassenger := validatePassengerHandler.NewHandler(passengerSvc, log)
	createPassenger := createPassengerHandler.NewHandler(createPassengerUseCase, log)
	getPassenger := getPassengerHandler.NewHandler(passengerSvc, log)
	listCompanions := listCompanionsHandler.NewHandler(passengerSvc, log)
	promoteCompanion := promoteCompanionHandler.NewHandler(passengerSvc, log)
	passengerDrafts := passengerDraftsHandler.NewHandler(draftSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getCupo := getCupoHandler.NewHandler(cupoSvc, log)
	cupoHandoff := cupoHandoffHandler.NewHandler(cupoSvc, log)
	calendarLive := ws.NewCalendarLive(getCalendarUseCase, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Auth.Enabled {
		api.Use(middleware.Auth(cfg.Auth.JWTSecret, log))
		log.Info("Bearer token authentication enabled")
	} else {
		log.Warn("Authentication is disabled")
	}

	// --- Пассажиры ---
	api.HandleFunc("/passengers/validate", validatePassenger.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passengers", createPassenger.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passengers/{passengerId}", getPassenger.Handle).Methods(http.MethodGet)
	api.HandleFunc("/passengers/{passengerId}/companions", listCompanions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/passengers/{passengerId}/promote", promoteCompanion.Handle).Methods(http.MethodPost)

	// --- Черновики формы пассажира ---
	api.HandleFunc("/passenger-drafts", passengerDrafts.Open).Methods(http.MethodPost)
	api.HandleFunc("/passenger-drafts/{draftId}", passengerDrafts.Get).Methods(http.MethodGet)
	api.HandleFunc("/passenger-drafts/{draftId}", passengerDrafts.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/passenger-drafts/{draftId}/primary", passengerDrafts.SetPrimary).Methods(http.MethodPut)
	api.HandleFunc("/passenger-drafts/{draftId}/companions", passengerDrafts.AddCompanion).Methods(http.MethodPost)
	api.HandleFunc("/passenger-drafts/{draftId}/companions/{companionId}", passengerDrafts.UpdateCompanion).Methods(http.MethodPut)
	api.HandleFunc("/passenger-drafts/{draftId}/companions/{companionId}", passengerDrafts.RemoveCompanion).Methods(http.MethodDelete)
	api.HandleFunc("/passenger-drafts/{draftId}/submit", passengerDrafts.Submit).Methods(http.MethodPost)

	// --- Календарь cupos ---
	// live и calendar регистрируются раньше {cupoId}
	api.HandleFunc("/cupos/calendar/live", calendarLive.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cupos/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cupos/{cupoId}", getCupo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cupos/{cupoId}/handoff", cupoHandoff.Handle).Methods(http.MethodPost)

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

	completion.Stop()
	if draftPurge != nil {
		draftPurge.Stop()
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
