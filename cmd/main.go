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

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/admin_login"
	checkTelegramLinkHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/check_telegram_link"
	createBookingHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/delete_service"
	generateReportHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/generate_report"
	getAllBookingsHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_all_bookings"
	getAvailableTimesHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_available_times"
	getClientHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_client"
	getCurrentUserHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_current_user"
	getScheduleHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/health"
	linkTelegramHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/link_telegram"
	listClientsHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/list_clients"
	listReportsHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/list_reports"
	listServicesHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/list_services"
	loginHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/login"
	registerHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/register"
	unlinkTelegramHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/unlink_telegram"
	updateBookingStatusHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/avikhr/SalonBookingService/internal/api/handlers/update_service"
	"github.com/avikhr/SalonBookingService/internal/api/middleware"
	"github.com/avikhr/SalonBookingService/internal/config"
	bookingRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/booking"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	telegramLinkRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/telegramlink"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
	telegramIntegration "github.com/avikhr/SalonBookingService/internal/integrations/telegram"
	authService "github.com/avikhr/SalonBookingService/internal/service/auth"
	bookingsService "github.com/avikhr/SalonBookingService/internal/service/bookings"
	catalogService "github.com/avikhr/SalonBookingService/internal/service/catalog"
	clientsService "github.com/avikhr/SalonBookingService/internal/service/clients"
	reportsService "github.com/avikhr/SalonBookingService/internal/service/reports"
	telegramService "github.com/avikhr/SalonBookingService/internal/service/telegram"
	createBookingUC "github.com/avikhr/SalonBookingService/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/avikhr/SalonBookingService/internal/usecase/get_available_times"
	"github.com/avikhr/SalonBookingService/pkg/auth"
	"github.com/avikhr/SalonBookingService/pkg/dbmetrics"
	"github.com/avikhr/SalonBookingService/pkg/logger"
	"github.com/avikhr/SalonBookingService/pkg/metrics"
	"github.com/avikhr/SalonBookingService/pkg/simpletxmanager"
	"github.com/avikhr/SalonBookingService/pkg/txmanager"
)

// systemTime реализует TimeProvider поверх системных часов
type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// txManagerIface общий интерфейс менеджеров транзакций (с метриками и без)
type txManagerIface interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SalonBookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository    *userRepo.Repository
		serviceRepository *serviceRepo.Repository
		bookingRepository *bookingRepo.Repository
		linkRepository    *telegramLinkRepo.Repository
		txMgr             txManagerIface
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		linkRepository = telegramLinkRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		linkRepository = telegramLinkRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Аутентификация
	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	clock := systemTime{}

	telegramSvc := telegramService.NewService(linkRepository, userRepository, txMgr, clock, log)

	var (
		bookingNotifier  bookingsService.Notifier
		creationNotifier createBookingUC.Notifier
		bot              *telegramIntegration.Bot
	)

	if cfg.Telegram.Enabled {
		botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			log.Fatal("Failed to initialize telegram bot: %v", err)
		}
		tgNotifier := telegramIntegration.NewNotifier(botAPI, userRepository, log)
		bookingNotifier = tgNotifier
		creationNotifier = tgNotifier
		bot = telegramIntegration.NewBot(botAPI, telegramSvc, log)
		log.Info("Telegram bot initialized (@%s)", botAPI.Self.UserName)
	} else {
		disabled := &telegramIntegration.DisabledNotifier{}
		bookingNotifier = disabled
		creationNotifier = disabled
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, tokenManager, passwordHasher, clock, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, bookingNotifier, log)
	clientSvc := clientsService.NewService(userRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, serviceRepository, userRepository, clock, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		userRepository,
		creationNotifier,
		txMgr,
		log,
	)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(authSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(bookingSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	generateReport := generateReportHandler.NewHandler(reportSvc, log)
	listReports := listReportsHandler.NewHandler(reportSvc, log)
	linkTelegram := linkTelegramHandler.NewHandler(telegramSvc, log)
	checkTelegramLink := checkTelegramLinkHandler.NewHandler(telegramSvc, log)
	unlinkTelegram := unlinkTelegramHandler.NewHandler(telegramSvc, log)
	health := healthHandler.NewHandler(clock)

	// Middleware
	authMiddleware := middleware.NewAuth(tokenManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetrics(metricsCollector)
		r.Use(metricsMiddleware.Collect)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Каталог услуг доступен без авторизации
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Расписание дня
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Проверка привязки telegram опрашивается до входа в аккаунт
	api.HandleFunc("/telegram/check-link/{code}", checkTelegramLink.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Authenticate)

	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/telegram/link", linkTelegram.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/telegram/unlink", unlinkTelegram.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют роль администратора)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(authMiddleware.RequireAdmin)

	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/bookings/all", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{id}", getClient.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/reports/generate", generateReport.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reports/history", listReports.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем бота (если включен)
	botCtx, stopBot := context.WithCancel(context.Background())
	defer stopBot()
	if bot != nil {
		go bot.Run(botCtx)
		log.Info("Telegram bot polling started")
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

	stopBot()

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
