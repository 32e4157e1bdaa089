package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/db"
)

type User struct {
	ID           string
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         string
	Locale       string
}

type UserRepository struct {
	pool *db.Pool
}

func NewUserRepository(pool *db.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateTx(ctx context.Context, tx pgx.Tx, user User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, name, phone, password_hash, role, locale)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Email, user.Name, user.Phone, user.PasswordHash, user.Role, user.Locale)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, COALESCE(phone, ''), password_hash, role, COALESCE(locale, '')
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.PasswordHash, &user.Role, &user.Locale)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, COALESCE(phone, ''), password_hash, role, COALESCE(locale, '')
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.PasswordHash, &user.Role, &user.Locale)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func IsNotFound(err error) bool {
	return err == pgx.ErrNoRows
}
