package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher) ports.UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordTooLong) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          domain.NormalizeEmail(input.Email),
		FullName:       input.FullName,
		HashedPassword: hashed,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, page ports.Page) ([]*domain.User, error) {
	page = page.Normalize()
	users, err := s.repo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	if update.Email != nil {
		email := domain.NormalizeEmail(*update.Email)
		update.Email = &email
	}

	user, err := s.repo.Update(ctx, id, update, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrUniqueViolation):
			return nil, domain.ErrDuplicateEmail
		case errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
