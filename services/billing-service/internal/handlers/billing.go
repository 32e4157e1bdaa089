package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/deposits"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

type Handler struct {
	repo                   *storage.Repository
	outboxRepo             *outbox.Repository
	depSvc                 *deposits.Service
	logger                 *slog.Logger
	stripeWebhookSecret    string
	stripeWebhookTolerance time.Duration
	stripeSecretKey        string
	checkoutSuccessURL     string
	checkoutCancelURL      string
}

type Config struct {
	StripeWebhookSecret           string
	StripeWebhookToleranceSeconds int
	StripeSecretKey               string
	CheckoutSuccessURL            string
	CheckoutCancelURL             string
}

func New(repo *storage.Repository, outboxRepo *outbox.Repository, logger *slog.Logger, cfg Config) *Handler {
	tolSeconds := cfg.StripeWebhookToleranceSeconds
	if tolSeconds <= 0 {
		tolSeconds = 300
	}
	return &Handler{
		repo:                   repo,
		outboxRepo:             outboxRepo,
		depSvc:                 deposits.New(repo, outboxRepo),
		logger:                 logger,
		stripeWebhookSecret:    strings.TrimSpace(cfg.StripeWebhookSecret),
		stripeWebhookTolerance: time.Duration(tolSeconds) * time.Second,
		stripeSecretKey:        strings.TrimSpace(cfg.StripeSecretKey),
		checkoutSuccessURL:     strings.TrimSpace(cfg.CheckoutSuccessURL),
		checkoutCancelURL:      strings.TrimSpace(cfg.CheckoutCancelURL),
	}
}

type checkoutRequest struct {
	ReservationID string `json:"reservation_id"`
	SuccessURL    string `json:"success_url,omitempty"`
	CancelURL     string `json:"cancel_url,omitempty"`
}

// CreateDepositCheckout opens a Stripe Checkout session for the deposit a
// reservation still owes.
func (h *Handler) CreateDepositCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.stripeSecretKey == "" {
		http.Error(w, "stripe checkout not configured (STRIPE_SECRET_KEY missing)", http.StatusNotImplemented)
		return
	}

	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		http.Error(w, "missing user context", http.StatusBadRequest)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ReservationID = strings.TrimSpace(req.ReservationID)
	if req.ReservationID == "" {
		http.Error(w, "reservation_id is required", http.StatusBadRequest)
		return
	}

	dep, err := h.repo.GetReservationDeposit(r.Context(), req.ReservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "no deposit on record for reservation", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load deposit", http.StatusInternalServerError)
		return
	}
	if dep.UserID != userID {
		http.Error(w, "no deposit on record for reservation", http.StatusNotFound)
		return
	}
	if dep.Status == "paid" {
		http.Error(w, "deposit already paid", http.StatusConflict)
		return
	}
	if dep.Status != "due" || dep.Amount <= 0 {
		http.Error(w, "no deposit due", http.StatusConflict)
		return
	}

	successURL := strings.TrimSpace(req.SuccessURL)
	if successURL == "" {
		successURL = h.checkoutSuccessURL
	}
	cancelURL := strings.TrimSpace(req.CancelURL)
	if cancelURL == "" {
		cancelURL = h.checkoutCancelURL
	}
	if successURL == "" || cancelURL == "" {
		http.Error(w, "success_url and cancel_url are required (or configure default URLs)", http.StatusBadRequest)
		return
	}

	// Stripe uses a global API key. Keep usage limited to this handler call.
	stripe.Key = h.stripeSecretKey

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(dep.ReservationID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(dep.Currency)),
					UnitAmount: stripe.Int64(minorUnits(dep.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Reservation deposit"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"reservation_id": dep.ReservationID,
			"user_id":        dep.UserID,
		},
	}
	if idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key")); idemKey != "" {
		params.IdempotencyKey = stripe.String(idemKey)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		h.logger.Error("stripe checkout session create failed", "err", err, "reservation_id", dep.ReservationID)
		http.Error(w, "failed to create checkout session", http.StatusBadGateway)
		return
	}

	tx, err := h.repo.Begin(r.Context())
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(r.Context()) }()
	if err := h.repo.UpsertDepositSession(r.Context(), tx, storage.DepositSession{
		StripeSessionID: sess.ID,
		ReservationID:   dep.ReservationID,
		UserID:          dep.UserID,
		Amount:          dep.Amount,
		Currency:        dep.Currency,
		Status:          "created",
		URL:             sess.URL,
	}); err != nil {
		http.Error(w, "failed to persist checkout session", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(r.Context()); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"url":        sess.URL,
		"amount":     dep.Amount,
		"currency":   dep.Currency,
	})
}

// GetRewards returns the caller's point balance and recent entries.
func (h *Handler) GetRewards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		http.Error(w, "missing user context", http.StatusBadRequest)
		return
	}

	balance, err := h.repo.RewardBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to load balance", http.StatusInternalServerError)
		return
	}
	entries, err := h.repo.RecentRewardEntries(r.Context(), userID, 20)
	if err != nil {
		http.Error(w, "failed to load entries", http.StatusInternalServerError)
		return
	}

	type entry struct {
		ReservationID string `json:"reservation_id"`
		Points        int    `json:"points"`
		CreatedAt     string `json:"created_at"`
	}
	items := make([]entry, 0, len(entries))
	for _, e := range entries {
		items = append(items, entry{
			ReservationID: e.ReservationID,
			Points:        e.Points,
			CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"balance": balance,
		"entries": items,
	})
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
