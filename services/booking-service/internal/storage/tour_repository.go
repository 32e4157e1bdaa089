package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/model"
)

type TourRepository struct {
	pool *db.Pool
}

func NewTourRepository(pool *db.Pool) *TourRepository {
	return &TourRepository{pool: pool}
}

// Create books a visit. The (property_id, date, time_label, user_id) unique
// index makes double-booking the same time a conflict.
func (r *TourRepository) Create(ctx context.Context, tx pgx.Tx, tour *model.Tour) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO tours (property_id, user_id, guest_name, guest_phone, tour_date, time_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, tour.PropertyID, tour.UserID, tour.GuestName, tour.GuestPhone, tour.Date, tour.TimeLabel).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *TourRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Tour, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, property_id::text, user_id::text, guest_name, guest_phone, tour_date, time_label, created_at
		FROM tours
		WHERE user_id = $1
		ORDER BY tour_date DESC, time_label DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tour
	for rows.Next() {
		var t model.Tour
		var date time.Time
		if err := rows.Scan(&t.ID, &t.PropertyID, &t.UserID, &t.GuestName, &t.GuestPhone, &date, &t.TimeLabel, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Date = date
		out = append(out, t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
