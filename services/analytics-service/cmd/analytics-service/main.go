package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/config"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/libs/httpx"
	"github.com/m-alharbi/aqarbook/libs/inbox"
	"github.com/m-alharbi/aqarbook/libs/kafkax"
	otelx "github.com/m-alharbi/aqarbook/libs/otel"
	"github.com/m-alharbi/aqarbook/libs/runtime"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "analytics-service")
	port, err := config.Port("PORT", "8085")
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

	inboxRepo := inbox.NewRepository(pool)
	brokers := config.String("KAFKA_BROKERS", "")
	groupID := config.String("KAFKA_GROUP_ID", "analytics-service")

	bumpStats := func(ctx context.Context, propertyID string, reservationInc, tourInc int) error {
		_, err := pool.Exec(ctx, `
			INSERT INTO property_stats (property_id, reservations, tours, last_event_at)
			VALUES ($1, GREATEST($2, 0), GREATEST($3, 0), now())
			ON CONFLICT (property_id)
			DO UPDATE SET reservations = GREATEST(property_stats.reservations + $2, 0),
			              tours = GREATEST(property_stats.tours + $3, 0),
			              last_event_at = now()
		`, propertyID, reservationInc, tourInc)
		return err
	}

	handleReservationEvent := func(inc int) kafkax.Handler {
		return func(ctx context.Context, msg kafka.Message) error {
			var payload struct {
				ReservationID string `json:"reservation_id"`
				PropertyID    string `json:"property_id"`
			}
			if err := json.Unmarshal(msg.Value, &payload); err != nil {
				logger.Error("invalid reservation payload", "err", err)
				return nil
			}
			if payload.PropertyID == "" {
				logger.Error("missing reservation fields")
				return nil
			}
			if err := bumpStats(ctx, payload.PropertyID, inc, 0); err != nil {
				logger.Error("failed to update property stats", "err", err)
				return err
			}
			logger.Info("reservation metric recorded", "property_id", payload.PropertyID, "reservation_id", payload.ReservationID)
			return nil
		}
	}

	if brokers != "" {
		createdConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   "booking.reservation.created.v1",
		}, handleReservationEvent(1))
		go createdConsumer.Run(ctx)

		cancelledConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   "booking.reservation.cancelled.v1",
		}, handleReservationEvent(-1))
		go cancelledConsumer.Run(ctx)

		tourConsumer := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   "booking.tour.booked.v1",
		}, func(ctx context.Context, msg kafka.Message) error {
			var payload struct {
				TourID     string `json:"tour_id"`
				PropertyID string `json:"property_id"`
			}
			if err := json.Unmarshal(msg.Value, &payload); err != nil {
				logger.Error("invalid tour payload", "err", err)
				return nil
			}
			if payload.PropertyID == "" {
				logger.Error("missing tour fields")
				return nil
			}
			if err := bumpStats(ctx, payload.PropertyID, 0, 1); err != nil {
				logger.Error("failed to update property stats", "err", err)
				return err
			}
			logger.Info("tour metric recorded", "property_id", payload.PropertyID, "tour_id", payload.TourID)
			return nil
		})
		go tourConsumer.Run(ctx)
	} else {
		logger.Warn("kafka consumers disabled (no KAFKA_BROKERS configured)")
	}

	mux := runtime.NewBaseMux(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)
	mux.HandleFunc("/api/v1/stats/property", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		propertyID := strings.TrimSpace(r.URL.Query().Get("property_id"))
		if propertyID == "" {
			http.Error(w, "property_id is required", http.StatusBadRequest)
			return
		}

		var reservations, tours int
		var lastEventAt time.Time
		err := pool.QueryRow(r.Context(), `
			SELECT reservations, tours, last_event_at
			FROM property_stats
			WHERE property_id = $1
		`, propertyID).Scan(&reservations, &tours, &lastEventAt)
		if err != nil && err != pgx.ErrNoRows {
			http.Error(w, "failed to load stats", http.StatusInternalServerError)
			return
		}

		resp := map[string]any{
			"property_id":  propertyID,
			"reservations": reservations,
			"tours":        tours,
		}
		if !lastEventAt.IsZero() {
			resp["last_event_at"] = lastEventAt.UTC().Format(time.RFC3339)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "analytics")
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
