package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
)

type PropertyRepository struct {
	pool *db.Pool
}

func NewPropertyRepository(pool *db.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *PropertyRepository) Create(ctx context.Context, tx pgx.Tx, p *model.Property) (string, error) {
	id := uuid.NewString()
	rates, groups, units, windows, err := marshalNested(p)
	if err != nil {
		return "", err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO properties
			(id, owner_id, title, description, category, offer_type, city, district, currency,
			 price, discount, insurance, rates, slot_groups, units, tour_windows, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 'active')
	`, id, p.OwnerID, p.Title, p.Description, p.Category, p.OfferType, p.City, p.District, p.Currency,
		p.Price.Float(), p.Discount.Float(), p.Insurance.Float(), rates, groups, units, windows)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PropertyRepository) Update(ctx context.Context, tx pgx.Tx, ownerID, id string, p *model.Property) error {
	rates, groups, units, windows, err := marshalNested(p)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
		UPDATE properties
		SET title = $3,
			description = $4,
			category = $5,
			offer_type = $6,
			city = $7,
			district = $8,
			currency = $9,
			price = $10,
			discount = $11,
			insurance = $12,
			rates = $13,
			slot_groups = $14,
			units = $15,
			tour_windows = $16,
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID, p.Title, p.Description, p.Category, p.OfferType, p.City, p.District, p.Currency,
		p.Price.Float(), p.Discount.Float(), p.Insurance.Float(), rates, groups, units, windows)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PropertyRepository) Archive(ctx context.Context, tx pgx.Tx, ownerID, id string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE properties
		SET status = 'archived', updated_at = now()
		WHERE id = $1 AND owner_id = $2 AND status <> 'archived'
	`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PropertyRepository) Get(ctx context.Context, id string) (model.Property, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectProperty+` WHERE id = $1`, id))
}

// GetActive is the public read path; archived listings 404.
func (r *PropertyRepository) GetActive(ctx context.Context, id string) (model.Property, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectProperty+` WHERE id = $1 AND status = 'active'`, id))
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, selectProperty+`
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

// ListActive pages through active listings for the full search reindex.
func (r *PropertyRepository) ListActive(ctx context.Context, limit int, afterID string) ([]model.Property, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.pool.Query(ctx, selectProperty+`
		WHERE status = 'active' AND id > $2
		ORDER BY id
		LIMIT $1
	`, limit, afterID)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

const selectProperty = `
	SELECT id::text, owner_id::text, title, description, category, offer_type, city, district, currency,
		price, discount, insurance, rates, slot_groups, units, tour_windows, status, created_at, updated_at
	FROM properties`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PropertyRepository) scanOne(row rowScanner) (model.Property, error) {
	var p model.Property
	var price, discount, insurance *float64
	var rates, groups, units, windows []byte
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Category, &p.OfferType, &p.City, &p.District, &p.Currency,
		&price, &discount, &insurance, &rates, &groups, &units, &windows, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Property{}, err
	}
	p.Price = numeric(price)
	p.Discount = numeric(discount)
	p.Insurance = numeric(insurance)
	if err := unmarshalNested(&p, rates, groups, units, windows); err != nil {
		return model.Property{}, err
	}
	return p, nil
}

func (r *PropertyRepository) scanAll(rows pgx.Rows) ([]model.Property, error) {
	defer rows.Close()
	var out []model.Property
	for rows.Next() {
		p, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func marshalNested(p *model.Property) (rates, groups, units, windows []byte, err error) {
	if rates, err = json.Marshal(p.Rates); err != nil {
		return
	}
	if groups, err = json.Marshal(p.Groups); err != nil {
		return
	}
	if units, err = json.Marshal(p.Units); err != nil {
		return
	}
	windows, err = json.Marshal(p.Windows)
	return
}

func unmarshalNested(p *model.Property, rates, groups, units, windows []byte) error {
	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &p.Rates); err != nil {
			return err
		}
	}
	if len(groups) > 0 {
		if err := json.Unmarshal(groups, &p.Groups); err != nil {
			return err
		}
	}
	if len(units) > 0 {
		if err := json.Unmarshal(units, &p.Units); err != nil {
			return err
		}
	}
	if len(windows) > 0 {
		if err := json.Unmarshal(windows, &p.Windows); err != nil {
			return err
		}
	}
	return nil
}

func numeric(v *float64) *model.Numeric {
	if v == nil {
		return nil
	}
	n := model.Numeric(*v)
	return &n
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
