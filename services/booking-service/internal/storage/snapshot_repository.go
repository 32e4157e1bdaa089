package storage

import (
	"context"

	"github.com/m-alharbi/aqarbook/libs/db"
)

// SnapshotRepository is the local copy of catalog listings, upserted from
// catalog.property.updated.v1 events. Booking never calls catalog-service
// synchronously on the default build.
type SnapshotRepository struct {
	pool *db.Pool
}

func NewSnapshotRepository(pool *db.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Upsert(ctx context.Context, propertyID, ownerID, status string, payload []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO listing_snapshots (property_id, owner_id, status, payload, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (property_id) DO UPDATE
		SET owner_id = EXCLUDED.owner_id,
			status = EXCLUDED.status,
			payload = EXCLUDED.payload,
			updated_at = now()
	`, propertyID, ownerID, status, payload)
	return err
}

// GetPayload returns the stored event payload for an active listing.
func (r *SnapshotRepository) GetPayload(ctx context.Context, propertyID string) ([]byte, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `
		SELECT payload
		FROM listing_snapshots
		WHERE property_id = $1 AND status = 'active'
	`, propertyID).Scan(&payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
