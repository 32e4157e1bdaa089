package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/model"
)

type ReservationRepository struct {
	pool *db.Pool
}

func NewReservationRepository(pool *db.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

type IdempotencyRecord struct {
	PropertyID      string
	IdempotencyKey  string
	ReservationID   string
	StatusCode      int
	ResponsePayload []byte
}

func (r *ReservationRepository) LockIdempotencyKey(ctx context.Context, tx pgx.Tx, propertyID, key string) (IdempotencyRecord, bool, error) {
	rec, err := r.selectIdempotencyForUpdate(ctx, tx, propertyID, key)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return IdempotencyRecord{}, false, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO reservation_idempotency_keys (property_id, idempotency_key)
		VALUES ($1, $2)
		ON CONFLICT (property_id, idempotency_key) DO NOTHING
	`, propertyID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}

	rec, err = r.selectIdempotencyForUpdate(ctx, tx, propertyID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}
	return rec, false, nil
}

func (r *ReservationRepository) FinalizeIdempotency(ctx context.Context, tx pgx.Tx, propertyID, key, reservationID string, statusCode int, response []byte) error {
	_, err := tx.Exec(ctx, `
		UPDATE reservation_idempotency_keys
		SET reservation_id = $3,
			status_code = $4,
			response_payload = $5,
			updated_at = now()
		WHERE property_id = $1 AND idempotency_key = $2
	`, propertyID, key, reservationID, statusCode, response)
	return err
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgx.Tx, res *model.Reservation) (string, error) {
	units, err := json.Marshal(res.Units)
	if err != nil {
		return "", err
	}
	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO reservations
			(property_id, user_id, guest_name, guest_phone, slot_ids, units, from_date, to_date,
			 deposit_amount, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id::text
	`, res.PropertyID, res.UserID, res.GuestName, res.GuestPhone, res.SlotIDs, units,
		res.FromDate, res.ToDate, res.DepositAmount, res.Currency, res.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// BookedSlotIDs is the union of slot ids held by non-cancelled reservations
// overlapping the inclusive date range.
func (r *ReservationRepository) BookedSlotIDs(ctx context.Context, propertyID string, from, to time.Time) ([]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT unnest(slot_ids)
		FROM reservations
		WHERE property_id = $1
			AND status <> 'cancelled'
			AND from_date <= $3
			AND to_date >= $2
		ORDER BY 1
	`, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

// BookedSlotIDsLocked is BookedSlotIDs inside the caller's transaction with
// the property's reservations locked, for create-time conflict checks.
func (r *ReservationRepository) BookedSlotIDsLocked(ctx context.Context, tx pgx.Tx, propertyID string, from, to time.Time) ([]int, error) {
	rows, err := tx.Query(ctx, `
		SELECT slot_ids
		FROM reservations
		WHERE property_id = $1
			AND status <> 'cancelled'
			AND from_date <= $3
			AND to_date >= $2
		FOR UPDATE
	`, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[int]bool)
	var ids []int
	for rows.Next() {
		var slotIDs []int
		if err := rows.Scan(&slotIDs); err != nil {
			return nil, err
		}
		for _, id := range slotIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

// BookedUnitCounts sums reserved unit quantities per type over an
// overlapping date range, inside the caller's transaction.
func (r *ReservationRepository) BookedUnitCounts(ctx context.Context, tx pgx.Tx, propertyID string, from, to time.Time) (map[string]int, error) {
	rows, err := tx.Query(ctx, `
		SELECT units
		FROM reservations
		WHERE property_id = $1
			AND status <> 'cancelled'
			AND from_date <= $3
			AND to_date >= $2
		FOR UPDATE
	`, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			continue
		}
		var units map[string]int
		if err := json.Unmarshal(raw, &units); err != nil {
			return nil, err
		}
		for unitType, qty := range units {
			counts[unitType] += qty
		}
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return counts, nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, reservationID string) (model.Reservation, error) {
	row := tx.QueryRow(ctx, selectReservation+` WHERE id = $1 FOR UPDATE`, reservationID)
	return scanReservation(row)
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx pgx.Tx, reservationID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE reservations
		SET status = 'cancelled',
			cancelled_at = now(),
			cancellation_reason = $2
		WHERE id = $1
		RETURNING cancelled_at
	`, reservationID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

// Confirm flips a pending reservation on deposit payment. A no-op (false)
// when the reservation is no longer pending.
func (r *ReservationRepository) Confirm(ctx context.Context, reservationID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET status = 'confirmed'
		WHERE id = $1 AND status = 'pending'
	`, reservationID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Reservation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, selectReservation+`
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

const selectReservation = `
	SELECT id::text, property_id::text, user_id::text, guest_name, guest_phone, slot_ids, units,
		from_date, to_date, deposit_amount, currency, status, cancelled_at,
		COALESCE(cancellation_reason, ''), created_at
	FROM reservations`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (model.Reservation, error) {
	var res model.Reservation
	var units []byte
	var cancelledAt *time.Time
	err := row.Scan(&res.ID, &res.PropertyID, &res.UserID, &res.GuestName, &res.GuestPhone,
		&res.SlotIDs, &units, &res.FromDate, &res.ToDate, &res.DepositAmount, &res.Currency,
		&res.Status, &cancelledAt, &res.CancelReason, &res.CreatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	res.CancelledAt = cancelledAt
	if len(units) > 0 {
		if err := json.Unmarshal(units, &res.Units); err != nil {
			return model.Reservation{}, err
		}
	}
	return res, nil
}

func (r *ReservationRepository) selectIdempotencyForUpdate(ctx context.Context, tx pgx.Tx, propertyID, key string) (IdempotencyRecord, error) {
	var rec IdempotencyRecord
	var responseText string
	err := tx.QueryRow(ctx, `
		SELECT property_id::text,
			idempotency_key,
			COALESCE(reservation_id::text, ''),
			COALESCE(status_code, 0),
			COALESCE(response_payload::text, '')
		FROM reservation_idempotency_keys
		WHERE property_id = $1 AND idempotency_key = $2
		FOR UPDATE
	`, propertyID, key).Scan(
		&rec.PropertyID,
		&rec.IdempotencyKey,
		&rec.ReservationID,
		&rec.StatusCode,
		&responseText,
	)
	if err != nil {
		return IdempotencyRecord{}, err
	}
	if responseText != "" {
		rec.ResponsePayload = []byte(responseText)
	}
	return rec, nil
}

func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505")
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
