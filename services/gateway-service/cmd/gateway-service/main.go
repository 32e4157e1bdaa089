package main

import (
	"context"
	"embed"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/m-alharbi/aqarbook/libs/auth"
	"github.com/m-alharbi/aqarbook/libs/config"
	"github.com/m-alharbi/aqarbook/libs/httpx"
	otelx "github.com/m-alharbi/aqarbook/libs/otel"
	"github.com/m-alharbi/aqarbook/libs/runtime"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:embed assets/gateway.v1.yaml
var openAPISpec embed.FS

func main() {
	service := config.String("SERVICE_NAME", "gateway-service")
	port, err := config.Port("PORT", "8080")
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

	mux := runtime.NewBaseMux()
	registerRoutes(mux, config.String("JWT_SECRET", "dev-secret"))

	bodyLimit := int64(config.Int("REQUEST_BODY_LIMIT_BYTES", 1<<20))
	requestTimeout := config.Duration("REQUEST_TIMEOUT_SECONDS", 10*time.Second)
	limitPerMinute := config.Int("RATE_LIMIT_PER_MINUTE", 60)

	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       config.Int("REDIS_DB", 0),
		})
		defer func() { _ = rdb.Close() }()

		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, config.Bool("RATE_LIMIT_FAIL_OPEN", true))
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	handler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   parseList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods:   parseList(config.String("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS")),
			AllowedHeaders:   parseList(config.String("CORS_ALLOWED_HEADERS", "Authorization,Content-Type,X-Request-Id,Idempotency-Key")),
			AllowCredentials: config.Bool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           config.Duration("CORS_MAX_AGE_SECONDS", 600*time.Second),
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(bodyLimit),
		httpx.WithTimeout(requestTimeout),
		rateLimitMW,
	)
	handler = otelhttp.NewHandler(handler, "gateway")
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

func parseList(raw string) []string {
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func registerRoutes(mux *http.ServeMux, jwtSecret string) {
	accountURL := mustParseURL(config.String("ACCOUNT_URL", "http://account-service:8081"))
	catalogURL := mustParseURL(config.String("CATALOG_URL", "http://catalog-service:8082"))
	bookingURL := mustParseURL(config.String("BOOKING_URL", "http://booking-service:8083"))
	billingURL := mustParseURL(config.String("BILLING_URL", "http://billing-service:8084"))
	analyticsURL := mustParseURL(config.String("ANALYTICS_URL", "http://analytics-service:8085"))

	accountProxy := httputil.NewSingleHostReverseProxy(accountURL)
	catalogProxy := httputil.NewSingleHostReverseProxy(catalogURL)
	bookingProxy := httputil.NewSingleHostReverseProxy(bookingURL)
	billingProxy := httputil.NewSingleHostReverseProxy(billingURL)
	analyticsProxy := httputil.NewSingleHostReverseProxy(analyticsURL)
	otelTransport := otelhttp.NewTransport(http.DefaultTransport)
	accountProxy.Transport = otelTransport
	catalogProxy.Transport = otelTransport
	bookingProxy.Transport = otelTransport
	billingProxy.Transport = otelTransport
	analyticsProxy.Transport = otelTransport

	registerProxy(mux, "/api/v1/auth", accountProxy)

	// Anonymous browsing: listings, quotes, search, grid and tour times.
	registerProxy(mux, "/api/v1/public/properties", catalogProxy)
	registerProxy(mux, "/api/v1/public/price", catalogProxy)
	registerProxy(mux, "/api/v1/public/search", catalogProxy)
	registerProxy(mux, "/api/v1/public/grid", bookingProxy)
	registerProxy(mux, "/api/v1/public/tour-times", bookingProxy)

	// Booking needs the caller's identity.
	registerProxy(mux, "/api/v1/public/reservations", requireAuth(bookingProxy, jwtSecret))
	registerProxy(mux, "/api/v1/public/tours", requireAuth(bookingProxy, jwtSecret))

	registerProxy(mux, "/api/v1/catalog", requireAuth(requireRole(catalogProxy, "owner", "admin"), jwtSecret))

	// Stripe needs to reach the webhook endpoint without a JWT; signature verification is the auth.
	registerProxy(mux, "/api/v1/billing/webhook", billingProxy)
	registerProxy(mux, "/api/v1/deposits", requireAuth(billingProxy, jwtSecret))
	registerProxy(mux, "/api/v1/rewards", requireAuth(billingProxy, jwtSecret))

	registerProxy(mux, "/api/v1/stats", requireAuth(analyticsProxy, jwtSecret))

	mux.HandleFunc("/openapi", func(w http.ResponseWriter, _ *http.Request) {
		data, err := openAPISpec.ReadFile("assets/gateway.v1.yaml")
		if err != nil {
			http.Error(w, "openapi not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

func registerProxy(mux *http.ServeMux, prefix string, handler http.Handler) {
	if !strings.HasSuffix(prefix, "/") {
		mux.Handle(prefix, handler)
		mux.Handle(prefix+"/", handler)
		return
	}
	mux.Handle(prefix, handler)
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func requireAuth(next http.Handler, jwtSecret string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") || len(strings.TrimSpace(authHeader)) <= len("Bearer ") {
			http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := auth.ParseAndVerifyHS256(token, jwtSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		r.Header.Del("X-User-Id")
		r.Header.Del("X-Owner-Id")
		r.Header.Del("X-Role")
		r.Header.Set("X-User-Id", claims.Sub)
		r.Header.Set("X-Role", claims.Role)
		if claims.Role == "owner" || claims.Role == "admin" {
			r.Header.Set("X-Owner-Id", claims.Sub)
		}
		next.ServeHTTP(w, r)
	})
}

func requireRole(next http.Handler, roles ...string) http.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.Header.Get("X-Role")
		if _, ok := allowed[role]; !ok {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
