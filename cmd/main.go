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

	addFavoriteHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/add_favorite"
	cancelAppointmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_appointment"
	createPromotionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_promotion"
	createReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_review"
	createVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_vehicle"
	getAppointmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_appointment"
	getFreeSlotsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_free_slots"
	getPaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_payment"
	getSubscriptionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_subscription"
	getUserAppointmentsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_appointments"
	getVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_vehicle"
	listFavoritesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_favorites"
	listNotificationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_notifications"
	listPlansHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_plans"
	listReviewsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_reviews"
	listVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_vehicles"
	markNotificationReadHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/mark_notification_read"
	payAppointmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/pay_appointment"
	removeFavoriteHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/remove_favorite"
	subscribeHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/subscribe"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_appointment_status"
	updateVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_vehicle"
	validatePromotionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/validate_promotion"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/appointment"
	favoriteRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/migrations"
	notificationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/notification"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	promotionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/promotion"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/jobs"
	appointmentsService "github.com/m04kA/SMC-RentalService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-RentalService/internal/service/catalog"
	favoritesService "github.com/m04kA/SMC-RentalService/internal/service/favorites"
	notificationsService "github.com/m04kA/SMC-RentalService/internal/service/notifications"
	paymentsService "github.com/m04kA/SMC-RentalService/internal/service/payments"
	promotionsService "github.com/m04kA/SMC-RentalService/internal/service/promotions"
	reviewsService "github.com/m04kA/SMC-RentalService/internal/service/reviews"
	subscriptionsService "github.com/m04kA/SMC-RentalService/internal/service/subscriptions"
	createAppointmentUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_appointment"
	getFreeSlotsUC "github.com/m04kA/SMC-RentalService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Применяем миграции схемы
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		vehicleRepository      *vehicleRepo.Repository
		userRepository         *userRepo.Repository
		promotionRepository    *promotionRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		paymentRepository      *paymentRepo.Repository
		reviewRepository       *reviewRepo.Repository
		favoriteRepository     *favoriteRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		favoriteRepository = favoriteRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		favoriteRepository = favoriteRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notificationsSvc := notificationsService.NewService(notificationRepository, log)
	catalogSvc := catalogService.NewService(vehicleRepository, userRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		paymentRepository,
		userRepository,
		notificationsSvc,
		log,
	)
	promotionsSvc := promotionsService.NewService(
		promotionRepository,
		vehicleRepository,
		subscriptionRepository,
		userRepository,
		log,
	)
	subscriptionsSvc := subscriptionsService.NewService(subscriptionRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, appointmentRepository, notificationsSvc, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, vehicleRepository, appointmentRepository, log)
	favoritesSvc := favoritesService.NewService(favoriteRepository, vehicleRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		vehicleRepository,
		promotionRepository,
		subscriptionRepository,
		notificationsSvc,
		txMgr,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		appointmentRepository,
		vehicleRepository,
		log,
	)

	// Инициализируем handlers
	listVehicles := listVehiclesHandler.NewHandler(catalogSvc, log)
	getVehicle := getVehicleHandler.NewHandler(catalogSvc, log)
	createVehicle := createVehicleHandler.NewHandler(catalogSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(catalogSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	payAppointment := payAppointmentHandler.NewHandler(paymentsSvc, log)
	getPayment := getPaymentHandler.NewHandler(paymentsSvc, log)
	createPromotion := createPromotionHandler.NewHandler(promotionsSvc, log)
	validatePromotion := validatePromotionHandler.NewHandler(promotionsSvc, log)
	listPlans := listPlansHandler.NewHandler(subscriptionsSvc, log)
	subscribe := subscribeHandler.NewHandler(subscriptionsSvc, log)
	getSubscription := getSubscriptionHandler.NewHandler(subscriptionsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewsSvc, log)
	addFavorite := addFavoriteHandler.NewHandler(favoritesSvc, log)
	removeFavorite := removeFavoriteHandler.NewHandler(favoritesSvc, log)
	listFavorites := listFavoritesHandler.NewHandler(favoritesSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationsSvc, log)

	// Запускаем фоновые задачи
	scheduler := jobs.NewScheduler(appointmentRepository, promotionRepository, log)
	if err := scheduler.Start(cfg.Jobs.CompleteAppointmentsSchedule, cfg.Jobs.DeactivatePromotionsSchedule); err != nil {
		log.Fatal("Failed to start jobs scheduler: %v", err)
	}

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог автомобилей
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)

	// Свободные интервалы аренды автомобиля
	api.HandleFunc("/vehicles/{vehicleId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Отзывы об автомобиле
	api.HandleFunc("/vehicles/{vehicleId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// Тарифы подписки
	api.HandleFunc("/subscription-plans", listPlans.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление каталогом (для менеджеров) ---
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)

	// --- Бронирования аренды ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/appointments/{appointmentId}/pay", payAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/payment", getPayment.Handle).Methods(http.MethodGet)

	// --- Промоакции ---
	protected.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/promotions/validate", validatePromotion.Handle).Methods(http.MethodPost)

	// --- Подписки ---
	protected.HandleFunc("/subscriptions", subscribe.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/subscriptions/me", getSubscription.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/vehicles/{vehicleId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Избранное ---
	protected.HandleFunc("/vehicles/{vehicleId}/favorite", addFavorite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{vehicleId}/favorite", removeFavorite.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/me/favorites", listFavorites.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновые задачи
	scheduler.Stop()

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
