package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("invalid username or phone number")
)

// UserService provides customer account operations
type UserService interface {
	Signup(ctx context.Context, username, phone string) (*model.User, error)
	Login(ctx context.Context, username, phone string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Signup registers a customer; both username and phone number must be unused
func (s *userService) Signup(ctx context.Context, username, phone string) (*model.User, error) {
	existing, err := s.repo.FindByUsernameOrPhone(ctx, username, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &model.User{Username: username, PhoneNumber: phone}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login matches username and phone number exactly
func (s *userService) Login(ctx context.Context, username, phone string) (*model.User, error) {
	user, err := s.repo.FindByUsernameAndPhone(ctx, username, phone)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
