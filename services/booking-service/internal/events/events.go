// Package events holds the Kafka consumer handlers keeping booking-service's
// read models in sync with the rest of the platform.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/m-alharbi/aqarbook/libs/kafkax"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
)

// PropertyUpdated applies catalog.property.updated.v1 to the listing
// snapshot table. Undecodable payloads are logged and skipped so the
// consumer keeps moving.
func PropertyUpdated(snapshots *storage.SnapshotRepository, logger *slog.Logger) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var doc struct {
			Property struct {
				ID      string `json:"id"`
				OwnerID string `json:"owner_id"`
				Status  string `json:"status"`
			} `json:"property"`
		}
		if err := json.Unmarshal(msg.Value, &doc); err != nil || doc.Property.ID == "" {
			logger.Error("undecodable property update", "err", err)
			return nil
		}
		if err := snapshots.Upsert(ctx, doc.Property.ID, doc.Property.OwnerID, doc.Property.Status, msg.Value); err != nil {
			return err
		}
		logger.Info("listing snapshot updated", "property_id", doc.Property.ID, "status", doc.Property.Status)
		return nil
	}
}

// DepositPaid confirms the pending reservation named by a
// billing.deposit.paid.v1 event.
func DepositPaid(reservations *storage.ReservationRepository, logger *slog.Logger) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var doc struct {
			ReservationID string `json:"reservation_id"`
		}
		if err := json.Unmarshal(msg.Value, &doc); err != nil || doc.ReservationID == "" {
			logger.Error("undecodable deposit event", "err", err)
			return nil
		}
		confirmed, err := reservations.Confirm(ctx, doc.ReservationID)
		if err != nil {
			return err
		}
		if confirmed {
			logger.Info("reservation confirmed", "reservation_id", doc.ReservationID)
		} else {
			logger.Warn("deposit for non-pending reservation", "reservation_id", doc.ReservationID)
		}
		return nil
	}
}
