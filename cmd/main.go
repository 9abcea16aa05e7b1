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

	admitBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/admit_booking"
	applyOverrideHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/apply_override"
	cancelBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/cancel_booking"
	getAnalyticsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_analytics"
	getBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_booking"
	getEffectivePriceHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_effective_price"
	getHotelBookingsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_hotel_bookings"
	getPricingHistoryHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_pricing_history"
	guestQueryHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/guest_query"
	quotePriceHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/quote_price"
	recommendPricesHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/recommend_prices"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/config"
	analyticsRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/analytics"
	bookingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/booking"
	guestQueryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/guestquery"
	pricingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricing"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	assistantClient "github.com/m04kA/SMC-StayService/internal/integrations/assistant"
	analyticsService "github.com/m04kA/SMC-StayService/internal/service/analytics"
	bookingsService "github.com/m04kA/SMC-StayService/internal/service/bookings"
	guestQueriesService "github.com/m04kA/SMC-StayService/internal/service/guestqueries"
	pricingService "github.com/m04kA/SMC-StayService/internal/service/pricing"
	admitBookingUC "github.com/m04kA/SMC-StayService/internal/usecase/admit_booking"
	quotePriceUC "github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
	recommendPricesUC "github.com/m04kA/SMC-StayService/internal/usecase/recommend_prices"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/logger"
	"github.com/m04kA/SMC-StayService/pkg/metrics"
	"github.com/m04kA/SMC-StayService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
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

	log.Info("Starting SMC-StayService...")
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

	// Инициализируем клиента ассистента
	assistant := assistantClient.NewClient(
		cfg.Assistant.URL,
		time.Duration(cfg.Assistant.Timeout)*time.Second,
		log,
	)
	log.Info("Assistant client initialized (url=%s timeout=%ds)", cfg.Assistant.URL, cfg.Assistant.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		roomRepository      *roomRepo.Repository
		pricingRepository   *pricingRepo.Repository
		analyticsRepository *analyticsRepo.Repository
		queryRepository     *guestQueryRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		analyticsRepository = analyticsRepo.NewRepository(wrappedDB)
		queryRepository = guestQueryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		analyticsRepository = analyticsRepo.NewRepository(db)
		queryRepository = guestQueryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	pricingSvc := pricingService.NewService(roomRepository, pricingRepository, log)
	analyticsSvc := analyticsService.NewService(analyticsRepository, log)
	guestQuerySvc := guestQueriesService.NewService(queryRepository, assistant, log)

	// Инициализируем use cases
	admitBookingUseCase := admitBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(
		roomRepository,
		bookingRepository,
		pricingRepository,
		cfg.Pricing.FallbackBasePrice,
		log,
	)
	recommendPricesUseCase := recommendPricesUC.NewUseCase(
		roomRepository,
		quotePriceUseCase,
		log,
	)

	// Инициализируем handlers
	admitBooking := admitBookingHandler.NewHandler(admitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getHotelBookings := getHotelBookingsHandler.NewHandler(bookingSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	recommendPrices := recommendPricesHandler.NewHandler(recommendPricesUseCase, log)
	applyOverride := applyOverrideHandler.NewHandler(pricingSvc, log)
	getEffectivePrice := getEffectivePriceHandler.NewHandler(pricingSvc, log)
	getPricingHistory := getPricingHistoryHandler.NewHandler(pricingSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)
	guestQuery := guestQueryHandler.NewHandler(guestQuerySvc, log)

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

	// Создание бронирования
	api.HandleFunc("/bookings", admitBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Котировка цены для пары (номер, дата)
	api.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/quote", quotePrice.Handle).Methods(http.MethodGet)

	// Действующая цена (оверрайд или базовая)
	api.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/price", getEffectivePrice.Handle).Methods(http.MethodGet)

	// Гостевой вопрос ассистенту
	api.HandleFunc("/hotels/{hotelId}/guest-query", guestQuery.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth)

	// Список бронирований отеля
	staff.HandleFunc("/hotels/{hotelId}/bookings", getHotelBookings.Handle).Methods(http.MethodGet)

	// Рекомендации по ценам
	staff.HandleFunc("/hotels/{hotelId}/recommendations", recommendPrices.Handle).Methods(http.MethodGet)

	// Ручная цена для пары (номер, дата)
	staff.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/price-override", applyOverride.Handle).Methods(http.MethodPost)

	// Журнал расчетов по номеру
	staff.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/pricing-history", getPricingHistory.Handle).Methods(http.MethodGet)

	// Сводная аналитика отеля
	staff.HandleFunc("/hotels/{hotelId}/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// Распределение гостевых вопросов по намерениям
	staff.HandleFunc("/hotels/{hotelId}/guest-queries/summary", guestQuery.HandleSummary).Methods(http.MethodGet)

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
