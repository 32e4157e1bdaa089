// Package events maintains the deposits-due read model from booking events.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/m-alharbi/aqarbook/libs/kafkax"
	"github.com/m-alharbi/aqarbook/services/billing-service/internal/storage"
)

// ReservationCreated records the deposit a new reservation owes.
// Zero-deposit reservations confirm immediately and never reach billing.
func ReservationCreated(repo *storage.Repository, logger *slog.Logger) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var doc struct {
			ReservationID string  `json:"reservation_id"`
			PropertyID    string  `json:"property_id"`
			UserID        string  `json:"user_id"`
			DepositAmount float64 `json:"deposit_amount"`
			Currency      string  `json:"currency"`
		}
		if err := json.Unmarshal(msg.Value, &doc); err != nil || doc.ReservationID == "" {
			logger.Error("undecodable reservation event", "err", err)
			return nil
		}
		if doc.DepositAmount <= 0 {
			return nil
		}
		if err := repo.UpsertReservationDeposit(ctx, storage.ReservationDeposit{
			ReservationID: doc.ReservationID,
			PropertyID:    doc.PropertyID,
			UserID:        doc.UserID,
			Amount:        doc.DepositAmount,
			Currency:      doc.Currency,
		}); err != nil {
			return err
		}
		logger.Info("deposit due recorded", "reservation_id", doc.ReservationID, "amount", doc.DepositAmount)
		return nil
	}
}

// ReservationCancelled voids a still-unpaid deposit so checkout can no
// longer be opened for it.
func ReservationCancelled(repo *storage.Repository, logger *slog.Logger) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var doc struct {
			ReservationID string `json:"reservation_id"`
		}
		if err := json.Unmarshal(msg.Value, &doc); err != nil || doc.ReservationID == "" {
			logger.Error("undecodable cancellation event", "err", err)
			return nil
		}
		if err := repo.VoidReservationDeposit(ctx, doc.ReservationID); err != nil {
			return err
		}
		return nil
	}
}
