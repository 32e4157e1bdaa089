package main

import (
	"context"
	"net/http"
	"time"

	"github.com/m-alharbi/aqarbook/libs/config"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/libs/httpx"
	"github.com/m-alharbi/aqarbook/libs/inbox"
	"github.com/m-alharbi/aqarbook/libs/kafkax"
	otelx "github.com/m-alharbi/aqarbook/libs/otel"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/libs/runtime"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/cache"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/catalog"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/events"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/handlers"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "booking-service")
	port, err := config.Port("PORT", "8083")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	reservations := storage.NewReservationRepository(pool)
	tours := storage.NewTourRepository(pool)
	snapshots := storage.NewSnapshotRepository(pool)

	var provider catalog.Provider = catalog.NewSnapshotProvider(snapshots)
	if addr := config.String("CATALOG_GRPC_ADDR", ""); addr != "" {
		grpcProvider, err := catalog.NewGRPCProvider(addr)
		if err != nil {
			logger.Error("catalog grpc dial failed", "addr", addr, "err", err)
		} else if grpcProvider != nil {
			provider = grpcProvider
			logger.Info("using catalog grpc provider", "addr", addr)
		}
	}

	var rdb *redis.Client
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	} else {
		logger.Warn("slot cache disabled (no REDIS_ADDR configured)")
	}
	slotCache := cache.New(rdb, config.Duration("SLOT_CACHE_TTL_SECONDS", 30*time.Second), logger)

	outboxRepo := outbox.NewRepository(pool)
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	inboxRepo := inbox.NewRepository(pool)
	brokers := config.String("KAFKA_BROKERS", "")
	if brokers != "" {
		propertyConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: "booking-service",
			Topic:   "catalog.property.updated.v1",
		}, events.PropertyUpdated(snapshots, logger))
		go propertyConsumer.Run(ctx)

		depositConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: "booking-service",
			Topic:   "billing.deposit.paid.v1",
		}, events.DepositPaid(reservations, logger))
		go depositConsumer.Run(ctx)
	} else {
		logger.Warn("kafka consumers disabled (no KAFKA_BROKERS configured)")
	}

	h := handlers.New(reservations, tours, provider, slotCache, outboxRepo, logger)

	mux := runtime.NewBaseMux(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)
	mux.HandleFunc("/api/v1/public/grid", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Grid(w, r)
	})
	mux.HandleFunc("/api/v1/public/tour-times", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.TourTimes(w, r)
	})
	mux.HandleFunc("/api/v1/public/reservations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.CreateReservation(w, r)
		case http.MethodGet:
			h.ListReservations(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/public/reservations/cancel", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.CancelReservation(w, r)
	})
	mux.HandleFunc("/api/v1/public/tours", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.BookTour(w, r)
		case http.MethodGet:
			h.ListTours(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "booking")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
