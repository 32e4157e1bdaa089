package reconcile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/deposits"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

// StripeReconciler closes the gap left by missed webhooks: sessions still
// 'created' after the cutoff are re-read from Stripe and completed or
// expired to match.
type StripeReconciler struct {
	pool        *db.Pool
	repo        *storage.Repository
	depSvc      *deposits.Service
	logger      *slog.Logger
	stripeKey   string
	cutoff      time.Duration
	batchSize   int
	advisoryKey int64
}

type StripeReconcilerConfig struct {
	StripeSecretKey string
	Cutoff          time.Duration
	BatchSize       int
	AdvisoryLockKey int64
}

func NewStripeReconciler(pool *db.Pool, repo *storage.Repository, depSvc *deposits.Service, logger *slog.Logger, cfg StripeReconcilerConfig) *StripeReconciler {
	cutoff := cfg.Cutoff
	if cutoff <= 0 {
		cutoff = 15 * time.Minute
	}
	bs := cfg.BatchSize
	if bs <= 0 {
		bs = 50
	}
	lockKey := cfg.AdvisoryLockKey
	if lockKey == 0 {
		lockKey = 7301001
	}
	return &StripeReconciler{
		pool:        pool,
		repo:        repo,
		depSvc:      depSvc,
		logger:      logger,
		stripeKey:   strings.TrimSpace(cfg.StripeSecretKey),
		cutoff:      cutoff,
		batchSize:   bs,
		advisoryKey: lockKey,
	}
}

func (r *StripeReconciler) Run(ctx context.Context, interval time.Duration) {
	if r.stripeKey == "" {
		r.logger.Warn("stripe reconcile disabled: STRIPE_SECRET_KEY missing")
		return
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	// Best-effort leader election for multi-instance deployments.
	// Only the instance holding the advisory lock will reconcile.
	for {
		if ctx.Err() != nil {
			return
		}
		var locked bool
		if err := r.pool.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, r.advisoryKey).Scan(&locked); err != nil {
			r.logger.Error("stripe reconcile: failed to acquire advisory lock", "err", err)
			time.Sleep(5 * time.Second)
			continue
		}
		if !locked {
			r.logger.Info("stripe reconcile: advisory lock held by another instance", "lock_key", r.advisoryKey)
			time.Sleep(30 * time.Second)
			continue
		}
		r.logger.Info("stripe reconcile: advisory lock acquired", "lock_key", r.advisoryKey)
		defer func() {
			_, _ = r.pool.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, r.advisoryKey)
		}()
		break
	}

	stripe.Key = r.stripeKey
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.reconcileOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcileOnce(ctx)
		}
	}
}

func (r *StripeReconciler) reconcileOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-r.cutoff)
	sessions, err := r.repo.ListPendingSessions(ctx, cutoff, r.batchSize)
	if err != nil {
		r.logger.Error("stripe reconcile: failed to list sessions", "err", err)
		return
	}
	if len(sessions) == 0 {
		return
	}

	for _, sess := range sessions {
		if ctx.Err() != nil {
			return
		}

		stripeSess, err := checkoutsession.Get(sess.StripeSessionID, nil)
		if err != nil {
			r.logger.Warn("stripe reconcile: failed to fetch session", "err", err, "stripe_session_id", sess.StripeSessionID)
			continue
		}

		tx, err := r.repo.Begin(ctx)
		if err != nil {
			r.logger.Error("stripe reconcile: db begin failed", "err", err)
			return
		}

		var applyErr error
		switch {
		case stripeSess.Status == stripe.CheckoutSessionStatusComplete &&
			stripeSess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
			applyErr = r.depSvc.ApplyPaid(ctx, tx, sess, time.Now().UTC())
		case stripeSess.Status == stripe.CheckoutSessionStatusExpired:
			applyErr = r.depSvc.ApplyExpired(ctx, tx, sess.StripeSessionID, time.Now().UTC())
		default:
			_ = tx.Rollback(ctx)
			continue
		}

		if applyErr != nil {
			_ = tx.Rollback(ctx)
			r.logger.Warn("stripe reconcile: apply failed", "err", applyErr, "stripe_session_id", sess.StripeSessionID)
			continue
		}
		if err := tx.Commit(ctx); err != nil {
			_ = tx.Rollback(ctx)
			r.logger.Warn("stripe reconcile: commit failed", "err", err, "stripe_session_id", sess.StripeSessionID)
			continue
		}
		r.logger.Info("stripe reconcile: session settled", "stripe_session_id", sess.StripeSessionID, "stripe_status", string(stripeSess.Status))
	}
}
