package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// ReservationDeposit is the deposits-due read model fed from
// booking.reservation.created.v1 events.
type ReservationDeposit struct {
	ReservationID string
	PropertyID    string
	UserID        string
	Amount        float64
	Currency      string
	Status        string
	PaidAt        *time.Time
	UpdatedAt     time.Time
}

func (r *Repository) UpsertReservationDeposit(ctx context.Context, d ReservationDeposit) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reservation_deposits (reservation_id, property_id, user_id, amount, currency, status)
		VALUES ($1, $2, $3, $4, $5, 'due')
		ON CONFLICT (reservation_id) DO UPDATE
		SET property_id = EXCLUDED.property_id,
			user_id = EXCLUDED.user_id,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			updated_at = now()
	`, d.ReservationID, d.PropertyID, d.UserID, d.Amount, d.Currency)
	return err
}

func (r *Repository) GetReservationDeposit(ctx context.Context, reservationID string) (ReservationDeposit, error) {
	var d ReservationDeposit
	var paidAt *time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT reservation_id::text, property_id::text, user_id::text, amount, currency, status, paid_at, updated_at
		FROM reservation_deposits
		WHERE reservation_id = $1
	`, reservationID).Scan(&d.ReservationID, &d.PropertyID, &d.UserID, &d.Amount, &d.Currency, &d.Status, &paidAt, &d.UpdatedAt)
	if err != nil {
		return ReservationDeposit{}, err
	}
	d.PaidAt = paidAt
	return d, nil
}

// MarkReservationDepositPaid flips a due deposit to paid. False on replay,
// so the deposit event and reward accrual happen exactly once.
func (r *Repository) MarkReservationDepositPaid(ctx context.Context, tx pgx.Tx, reservationID string, paidAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE reservation_deposits
		SET status = 'paid',
			paid_at = $2,
			updated_at = now()
		WHERE reservation_id = $1 AND status = 'due'
	`, reservationID, paidAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) VoidReservationDeposit(ctx context.Context, reservationID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE reservation_deposits
		SET status = 'void',
			updated_at = now()
		WHERE reservation_id = $1 AND status = 'due'
	`, reservationID)
	return err
}

type DepositSession struct {
	StripeSessionID string
	ReservationID   string
	UserID          string
	Amount          float64
	Currency        string
	Status          string
	URL             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	ExpiredAt       *time.Time
}

func (r *Repository) UpsertDepositSession(ctx context.Context, tx pgx.Tx, s DepositSession) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO deposit_sessions (stripe_session_id, reservation_id, user_id, amount, currency, status, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stripe_session_id) DO UPDATE
		SET status = EXCLUDED.status,
			url = EXCLUDED.url,
			updated_at = now()
	`, s.StripeSessionID, s.ReservationID, s.UserID, s.Amount, s.Currency, s.Status, nullIfEmpty(s.URL))
	return err
}

func (r *Repository) GetDepositSession(ctx context.Context, stripeSessionID string) (DepositSession, error) {
	var s DepositSession
	var paidAt *time.Time
	var expiredAt *time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT stripe_session_id, reservation_id::text, user_id::text, amount, currency, status,
			COALESCE(url, ''), created_at, updated_at, paid_at, expired_at
		FROM deposit_sessions
		WHERE stripe_session_id = $1
	`, stripeSessionID).Scan(&s.StripeSessionID, &s.ReservationID, &s.UserID, &s.Amount, &s.Currency,
		&s.Status, &s.URL, &s.CreatedAt, &s.UpdatedAt, &paidAt, &expiredAt)
	if err != nil {
		return DepositSession{}, err
	}
	s.PaidAt = paidAt
	s.ExpiredAt = expiredAt
	return s, nil
}

// ListPendingSessions returns checkout sessions still awaiting a webhook,
// created before the cutoff, for the reconciler.
func (r *Repository) ListPendingSessions(ctx context.Context, olderThan time.Time, limit int) ([]DepositSession, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT stripe_session_id, reservation_id::text, user_id::text, amount, currency, status,
			COALESCE(url, ''), created_at, updated_at, paid_at, expired_at
		FROM deposit_sessions
		WHERE status = 'created' AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DepositSession
	for rows.Next() {
		var s DepositSession
		var paidAt *time.Time
		var expiredAt *time.Time
		if err := rows.Scan(&s.StripeSessionID, &s.ReservationID, &s.UserID, &s.Amount, &s.Currency,
			&s.Status, &s.URL, &s.CreatedAt, &s.UpdatedAt, &paidAt, &expiredAt); err != nil {
			return nil, err
		}
		s.PaidAt = paidAt
		s.ExpiredAt = expiredAt
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) MarkSessionPaid(ctx context.Context, tx pgx.Tx, stripeSessionID string, paidAt time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE deposit_sessions
		SET status = 'paid',
			paid_at = $2,
			updated_at = now()
		WHERE stripe_session_id = $1 AND status <> 'paid'
	`, stripeSessionID, paidAt)
	return err
}

func (r *Repository) MarkSessionExpired(ctx context.Context, tx pgx.Tx, stripeSessionID string, expiredAt time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE deposit_sessions
		SET status = 'expired',
			expired_at = $2,
			updated_at = now()
		WHERE stripe_session_id = $1 AND status <> 'paid'
	`, stripeSessionID, expiredAt)
	return err
}

type ProviderEvent struct {
	Provider        string
	ProviderEventID string
	EventType       string
	Payload         []byte
}

var ErrDuplicateProviderEvent = errors.New("duplicate provider event")

func (r *Repository) InsertProviderEvent(ctx context.Context, tx pgx.Tx, evt ProviderEvent) error {
	var payload any
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO provider_events (provider, provider_event_id, event_type, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_event_id) DO NOTHING
	`, evt.Provider, evt.ProviderEventID, evt.EventType, payload)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateProviderEvent
	}
	return nil
}

type RewardEntry struct {
	UserID        string
	ReservationID string
	Points        int
	CreatedAt     time.Time
}

func (r *Repository) InsertRewardEntry(ctx context.Context, tx pgx.Tx, e RewardEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO reward_entries (user_id, reservation_id, points)
		VALUES ($1, $2, $3)
	`, e.UserID, e.ReservationID, e.Points)
	return err
}

func (r *Repository) RewardBalance(ctx context.Context, userID string) (int, error) {
	var balance int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0)
		FROM reward_entries
		WHERE user_id = $1
	`, userID).Scan(&balance)
	return balance, err
}

func (r *Repository) RecentRewardEntries(ctx context.Context, userID string, limit int) ([]RewardEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text, reservation_id::text, points, created_at
		FROM reward_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RewardEntry
	for rows.Next() {
		var e RewardEntry
		if err := rows.Scan(&e.UserID, &e.ReservationID, &e.Points, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
