package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeWebhook handles Stripe webhooks (no JWT auth; signature verification is the auth).
// Gateway should expose this path publicly.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.stripeWebhookSecret == "" {
		http.Error(w, "stripe webhook not configured", http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		http.Error(w, "missing Stripe-Signature header", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1 MiB hard cap
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	evt, err := webhook.ConstructEventWithTolerance(body, sigHeader, h.stripeWebhookSecret, h.stripeWebhookTolerance)
	if err != nil {
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	occurredAt := time.Unix(evt.Created, 0).UTC()
	evtType := string(evt.Type)
	h.logger.Info("billing provider event received",
		"provider", "stripe",
		"provider_event_id", evt.ID,
		"event_type", evtType,
		"occurred_at", occurredAt.Format(time.RFC3339),
	)

	tx, err := h.repo.Begin(r.Context())
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(r.Context()) }()

	// Idempotency: ignore replayed Stripe events.
	if err := h.repo.InsertProviderEvent(r.Context(), tx, storage.ProviderEvent{
		Provider:        "stripe",
		ProviderEventID: evt.ID,
		EventType:       evtType,
		Payload:         body,
	}); err != nil {
		if errors.Is(err, storage.ErrDuplicateProviderEvent) {
			h.logger.Info("billing provider event duplicate ignored", "provider", "stripe", "provider_event_id", evt.ID, "event_type", evtType)
			writeJSON(w, http.StatusOK, map[string]any{"status": "duplicate"})
			_ = tx.Commit(r.Context())
			return
		}
		http.Error(w, "failed to record provider event", http.StatusInternalServerError)
		return
	}

	switch evtType {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
			h.logger.Error("stripe: invalid checkout session payload", "err", err)
			break
		}
		sess, err := h.repo.GetDepositSession(r.Context(), session.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				h.logger.Warn("stripe: unknown checkout session", "stripe_session_id", session.ID)
				break
			}
			http.Error(w, "failed to load session", http.StatusInternalServerError)
			return
		}
		if err := h.depSvc.ApplyPaid(r.Context(), tx, sess, occurredAt); err != nil {
			http.Error(w, "failed to apply payment", http.StatusInternalServerError)
			return
		}

	case "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
			h.logger.Error("stripe: invalid checkout session payload", "err", err)
			break
		}
		if err := h.depSvc.ApplyExpired(r.Context(), tx, session.ID, occurredAt); err != nil {
			http.Error(w, "failed to expire session", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(r.Context()); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
