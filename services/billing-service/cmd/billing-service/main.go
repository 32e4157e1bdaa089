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
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/deposits"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/events"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/handlers"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/reconcile"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "billing-service")
	port, err := config.Port("PORT", "8084")
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

	repo := storage.NewRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	stripeKey := config.String("STRIPE_SECRET_KEY", "")
	h := handlers.New(repo, outboxRepo, logger, handlers.Config{
		StripeWebhookSecret:           config.String("STRIPE_WEBHOOK_SECRET", ""),
		StripeWebhookToleranceSeconds: config.Int("STRIPE_WEBHOOK_TOLERANCE_SECONDS", 300),
		StripeSecretKey:               stripeKey,
		CheckoutSuccessURL:            config.String("CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:             config.String("CHECKOUT_CANCEL_URL", ""),
	})

	depSvc := deposits.New(repo, outboxRepo)
	reconciler := reconcile.NewStripeReconciler(pool, repo, depSvc, logger, reconcile.StripeReconcilerConfig{
		StripeSecretKey: stripeKey,
		Cutoff:          config.Duration("STRIPE_RECONCILE_CUTOFF_SECONDS", 15*time.Minute),
		BatchSize:       config.Int("STRIPE_RECONCILE_BATCH_SIZE", 50),
		AdvisoryLockKey: int64(config.Int("STRIPE_RECONCILE_LOCK_KEY", 0)),
	})
	go reconciler.Run(ctx, config.Duration("STRIPE_RECONCILE_INTERVAL_SECONDS", 5*time.Minute))

	inboxRepo := inbox.NewRepository(pool)
	brokers := config.String("KAFKA_BROKERS", "")
	if brokers != "" {
		createdConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: "billing-service",
			Topic:   "booking.reservation.created.v1",
		}, events.ReservationCreated(repo, logger))
		go createdConsumer.Run(ctx)

		cancelledConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: "billing-service",
			Topic:   "booking.reservation.cancelled.v1",
		}, events.ReservationCancelled(repo, logger))
		go cancelledConsumer.Run(ctx)
	} else {
		logger.Warn("kafka consumers disabled (no KAFKA_BROKERS configured)")
	}

	mux := runtime.NewBaseMux(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)
	mux.HandleFunc("/api/v1/deposits/checkout", h.CreateDepositCheckout)
	mux.HandleFunc("/api/v1/billing/webhook", h.StripeWebhook)
	mux.HandleFunc("/api/v1/rewards", h.GetRewards)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "billing")
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
