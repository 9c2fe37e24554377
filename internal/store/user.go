package store

import (
	"context"
	"errors"
	"fmt"

	"linguaflow/internal/database"
	"linguaflow/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func GetUserByID(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, points, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Points,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, points, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Points,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser inserts u and fills in its points and creation time. A unique
// violation on the email column surfaces as ErrDuplicateEmail.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING points, created_at`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.Points, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserPoints(ctx context.Context, db database.DB, userID uuid.UUID) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT points FROM users WHERE id = $1`,
		userID,
	)
	var points int
	if err := row.Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("GetUserPoints: %w", err)
	}
	return points, nil
}

// AddUserPoints atomically adds delta to the user's points and returns the
// new total.
func AddUserPoints(ctx context.Context, db database.DB, userID uuid.UUID, delta int) (int, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET points = points + $1
		 WHERE id = $2
		 RETURNING points`,
		delta,
		userID,
	)
	var points int
	if err := row.Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("AddUserPoints: %w", err)
	}
	return points, nil
}
