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

	cmsWebhookHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/cms_webhook"
	createBookingRequestHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/create_booking_request"
	getAvailabilityHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_availability"
	getBookingRequestHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_booking_request"
	listBookingRequestsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/list_booking_requests"
	listGalleryHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/list_gallery"
	updateBookingRequestStatusHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_booking_request_status"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/config"
	settingsCache "github.com/m04kA/PhotoStudio-BookingService/internal/infra/cache/settings"
	bookingRequestRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking_request"
	cloudinaryClient "github.com/m04kA/PhotoStudio-BookingService/internal/integrations/cloudinary"
	cmsClient "github.com/m04kA/PhotoStudio-BookingService/internal/integrations/cms"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/notifier"
	bookingRequestsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests"
	galleryService "github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery"
	settingsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/settings"
	createBookingRequestUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking_request"
	getAvailabilityUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/logger"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
)

// eventPublisher издатель событий по заявкам (Kafka или Nop)
type eventPublisher interface {
	createBookingRequestUC.EventPublisher
	bookingRequestsService.EventPublisher
}

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

	log.Info("Starting PhotoStudio-BookingService...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var dbExecutor bookingRequestRepo.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	bookingRequestRepository := bookingRequestRepo.NewRepository(dbExecutor)

	// Redis: кэш настроек и общий rate limiter
	var (
		redisClient *redis.Client
		cache       settingsService.SettingsCache
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed, cache will fall back to CMS on errors: %v", err)
		}
		pingCancel()

		cache = settingsCache.NewRepository(redisClient, time.Duration(cfg.CMS.CacheTTL)*time.Second)
		log.Info("Redis settings cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.CMS.CacheTTL)
	}

	// Kafka: события по заявкам
	var publisher eventPublisher = notifier.Nop{}
	if cfg.Kafka.Enabled {
		kafkaPublisher := notifier.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Error("Failed to close kafka writer: %v", err)
			}
		}()
		publisher = kafkaPublisher
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем интеграционных клиентов
	cms := cmsClient.NewClient(
		cfg.CMS.URL,
		cfg.CMS.Token,
		cfg.Booking.DefaultTimezone,
		time.Duration(cfg.CMS.Timeout)*time.Second,
		log,
	)
	log.Info("CMS client initialized (url=%s, timeout=%ds)", cfg.CMS.URL, cfg.CMS.Timeout)

	var gallerySvc *galleryService.Service
	if cfg.Cloudinary.CloudName != "" {
		cld, err := cloudinaryClient.NewClient(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
			cfg.Cloudinary.Transformation,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize cloudinary client: %v", err)
		}
		gallerySvc = galleryService.NewService(cld, log)
		log.Info("Gallery enabled (cloud=%s, folder=%s)", cfg.Cloudinary.CloudName, cfg.Cloudinary.Folder)
	} else {
		log.Warn("Cloudinary is not configured, gallery endpoint disabled")
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(cache, cms, log)
	bookingRequestsSvc := bookingRequestsService.NewService(bookingRequestRepository, publisher, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(settingsSvc, log)
	createBookingRequestUseCase := createBookingRequestUC.NewUseCase(
		bookingRequestRepository,
		settingsSvc,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBookingRequest := createBookingRequestHandler.NewHandler(createBookingRequestUseCase, log)
	cmsWebhook := cmsWebhookHandler.NewHandler(settingsSvc, cfg.CMS.WebhookSecret, log)
	getBookingRequest := getBookingRequestHandler.NewHandler(bookingRequestsSvc, log)
	listBookingRequests := listBookingRequestsHandler.NewHandler(bookingRequestsSvc, log)
	updateBookingRequestStatus := updateBookingRequestStatusHandler.NewHandler(bookingRequestsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Календарь доступности
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Галерея работ
	if gallerySvc != nil {
		listGallery := listGalleryHandler.NewHandler(gallerySvc, log)
		api.HandleFunc("/gallery", listGallery.Handle).Methods(http.MethodGet)
	}

	// Отправка заявки (с ограничением частоты)
	var submitHandler http.Handler = http.HandlerFunc(createBookingRequest.Handle)
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		var limiter middleware.Limiter
		if redisClient != nil {
			limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimit.Requests, window, "rl:booking-requests")
		} else {
			limiter = middleware.NewLocalLimiter(cfg.RateLimit.Requests, window)
		}
		submitHandler = middleware.RateLimit(limiter, log)(submitHandler)
		log.Info("Rate limit enabled for booking requests: %d per %s", cfg.RateLimit.Requests, window)
	}
	api.Handle("/booking-requests", submitHandler).Methods(http.MethodPost)

	// Вебхук CMS (проверка секрета в обработчике)
	api.HandleFunc("/webhooks/cms", cmsWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	admin.HandleFunc("/booking-requests", listBookingRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/booking-requests/{id}", getBookingRequest.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/booking-requests/{id}/status", updateBookingRequestStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
