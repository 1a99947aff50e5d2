package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"
	"marketplace/internal/repository"
	"marketplace/internal/utils"

	log "github.com/sirupsen/logrus"
)

var (
	ErrAdminExists        = errors.New("username already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService provides admin account operations and credential checks
type AdminService interface {
	Signup(ctx context.Context, name, username, password string) (*model.Admin, error)
	Login(ctx context.Context, username, password string) (*model.Admin, error)
	Delete(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (*model.AdminIdentity, error)
}

type adminService struct {
	repo       repository.AdminRepository
	bcryptCost int
}

// NewAdminService creates a new AdminService
func NewAdminService(repo repository.AdminRepository, bcryptCost int) AdminService {
	return &adminService{repo: repo, bcryptCost: bcryptCost}
}

// Signup creates a new admin account
func (s *adminService) Signup(ctx context.Context, name, username, password string) (*model.Admin, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hashedPassword, err := utils.HashPasswordWithCost(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Name:         name,
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		// Lost a race with a concurrent signup for the same username
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin in repository: %w", err)
	}

	log.WithField("admin_id", admin.ID).Info("Admin account created")
	return admin, nil
}

// Login verifies admin credentials. Unknown usernames and wrong passwords
// are reported separately.
func (s *adminService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding admin by username: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Delete removes the admin account after re-checking its credentials
func (s *adminService) Delete(ctx context.Context, username, password string) error {
	admin, err := s.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, admin.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to delete admin in repository: %w", err)
	}

	log.WithField("admin_id", admin.ID).Info("Admin account deleted")
	return nil
}

// Authenticate is the per-request credential check used by the admin gate
func (s *adminService) Authenticate(ctx context.Context, username, password string) (*model.AdminIdentity, error) {
	admin, err := s.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	identity := admin.Identity()
	return &identity, nil
}
