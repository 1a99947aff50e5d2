package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin data
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	Delete(ctx context.Context, id int) error
}

type adminRepository struct {
	db DBTX
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DBTX) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin; ErrConflict if the username is taken
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	sql := `INSERT INTO admins (name, username, password_hash)
            VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, admin.Name, admin.Username, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByUsername retrieves an admin by username, nil if there is none
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	sql := `SELECT id, name, username, password_hash, created_at FROM admins WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&admin.ID, &admin.Name, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer handles it
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}
	return admin, nil
}

// Delete removes an admin by ID
func (r *adminRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
