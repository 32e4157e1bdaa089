package main

import (
	"context"
	"net/http"
	"time"

	"github.com/m-alharbi/aqarbook/libs/config"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/libs/httpx"
	"github.com/m-alharbi/aqarbook/libs/kafkax"
	otelx "github.com/m-alharbi/aqarbook/libs/otel"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/libs/runtime"
	"github.com/m-alharbi/aqarbook/services/account-service/internal/handlers"
	"github.com/m-alharbi/aqarbook/services/account-service/internal/sessions"
	"github.com/m-alharbi/aqarbook/services/account-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "account-service")
	port, err := config.Port("PORT", "8081")
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

	userRepo := storage.NewUserRepository(pool)
	refreshRepo := sessions.NewRefreshRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	signer := handlers.NewHS256Signer(config.String("JWT_SECRET", "dev-secret"))

	refreshTTLHours := config.Int("REFRESH_TTL_HOURS", 720)
	if refreshTTLHours <= 0 {
		logger.Error("invalid refresh ttl hours", "value", refreshTTLHours)
		panic("invalid REFRESH_TTL_HOURS")
	}
	refreshTTL := time.Duration(refreshTTLHours) * time.Hour

	authHandler := handlers.NewAuthHandler(signer, pool, userRepo, outboxRepo, refreshRepo, refreshTTL)

	mux := runtime.NewBaseMux(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("/api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("/api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("/api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("/api/v1/auth/me", authHandler.Me)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "account")
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
