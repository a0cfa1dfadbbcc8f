package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// Accounts are provisioned by the identity service; this driver only reads.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type userDTO struct {
	ID            uuid.UUID `db:"id"`
	Username      string    `db:"username"`
	Email         string    `db:"email"`
	IsPremium     bool      `db:"is_premium"`
	IsDeactivated bool      `db:"is_deactivated"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r *Repository) Flags(ctx context.Context, userID uuid.UUID) (model.AccountFlags, error) {
	var flags struct {
		IsPremium     bool `db:"is_premium"`
		IsDeactivated bool `db:"is_deactivated"`
	}

	query := `
		SELECT is_premium, is_deactivated
		FROM users
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &flags, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AccountFlags{}, ErrUserNotFound
		}
		return model.AccountFlags{}, fmt.Errorf("failed to load account flags: %w", err)
	}

	return model.AccountFlags{
		IsPremium:     flags.IsPremium,
		IsDeactivated: flags.IsDeactivated,
	}, nil
}

func (r *Repository) ByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	var row userDTO

	query := `
		SELECT id, username, email, is_premium, is_deactivated, created_at
		FROM users
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	return model.User{
		ID:            row.ID,
		Username:      row.Username,
		Email:         row.Email,
		IsPremium:     row.IsPremium,
		IsDeactivated: row.IsDeactivated,
		CreatedAt:     row.CreatedAt,
	}, nil
}
