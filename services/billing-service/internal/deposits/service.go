// Package deposits applies deposit payment outcomes. Both the Stripe
// webhook and the reconciler converge here so a payment is only ever
// applied once, however it was observed.
package deposits

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/rewards"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
)

type Service struct {
	repo       *storage.Repository
	outboxRepo *outbox.Repository
}

func New(repo *storage.Repository, outboxRepo *outbox.Repository) *Service {
	return &Service{repo: repo, outboxRepo: outboxRepo}
}

// ApplyPaid marks the session and its deposit paid, publishes
// billing.deposit.paid.v1 and accrues reward points. Replays are no-ops
// past the session update: the deposit flips to paid at most once.
func (s *Service) ApplyPaid(ctx context.Context, tx pgx.Tx, sess storage.DepositSession, paidAt time.Time) error {
	if err := s.repo.MarkSessionPaid(ctx, tx, sess.StripeSessionID, paidAt); err != nil {
		return err
	}

	first, err := s.repo.MarkReservationDepositPaid(ctx, tx, sess.ReservationID, paidAt)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"reservation_id": sess.ReservationID,
		"user_id":        sess.UserID,
		"amount":         sess.Amount,
		"currency":       sess.Currency,
		"paid_at":        paidAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	if err := s.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "deposit",
		AggregateID:   sess.ReservationID,
		EventType:     "billing.deposit.paid.v1",
		Payload:       payload,
	}); err != nil {
		return err
	}

	if points := rewards.PointsFor(sess.Amount); points > 0 {
		if err := s.repo.InsertRewardEntry(ctx, tx, storage.RewardEntry{
			UserID:        sess.UserID,
			ReservationID: sess.ReservationID,
			Points:        points,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ApplyExpired(ctx context.Context, tx pgx.Tx, stripeSessionID string, expiredAt time.Time) error {
	return s.repo.MarkSessionExpired(ctx, tx, stripeSessionID, expiredAt)
}
