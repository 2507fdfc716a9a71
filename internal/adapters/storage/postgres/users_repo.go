package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"openadopt/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, hashed_password,
			first_name, last_name,
			role, is_active, last_login,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		u.ID,
		u.Email,
		u.HashedPassword,
		u.FirstName,
		u.LastName,
		string(u.Role),
		u.IsActive,
		toNullTime(u.LastLogin),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT
			id, email, hashed_password,
			first_name, last_name,
			role, is_active, last_login,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT
			id, email, hashed_password,
			first_name, last_name,
			role, is_active, last_login,
			created_at, updated_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UsersRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET last_login = $2, updated_at = $2
		WHERE id = $1
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) scanOne(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	var lastLogin sql.NullTime
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.FirstName,
		&u.LastName,
		&role,
		&u.IsActive,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}

	u.Role = users.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
