package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for customer data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsernameAndPhone(ctx context.Context, username, phone string) (*model.User, error)
	FindByUsernameOrPhone(ctx context.Context, username, phone string) (*model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, phone_number)
            VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PhoneNumber).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsernameAndPhone is the customer login lookup: both must match
func (r *userRepository) FindByUsernameAndPhone(ctx context.Context, username, phone string) (*model.User, error) {
	sql := `SELECT id, username, phone_number, created_at FROM users
            WHERE username = $1 AND phone_number = $2`
	return r.findOne(ctx, sql, username, phone)
}

// FindByUsernameOrPhone returns any user holding either the username or the phone number
func (r *userRepository) FindByUsernameOrPhone(ctx context.Context, username, phone string) (*model.User, error) {
	sql := `SELECT id, username, phone_number, created_at FROM users
            WHERE username = $1 OR phone_number = $2
            ORDER BY id LIMIT 1`
	return r.findOne(ctx, sql, username, phone)
}

func (r *userRepository) findOne(ctx context.Context, sql string, args ...any) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.PhoneNumber, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
