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

type profileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) ports.ProfileService {
	return &profileService{
		repo: repo,
	}
}

func (s *profileService) Create(ctx context.Context, userID uuid.UUID, input ports.ProfileInput) (*domain.Profile, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, domain.ErrProfileAlreadyExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		UserID:         userID,
		Interests:      input.Interests,
		Skills:         input.Skills,
		EducationLevel: input.EducationLevel,
		Goals:          input.Goals,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		switch {
		case errors.Is(err, ports.ErrUniqueViolation):
			return nil, domain.ErrProfileAlreadyExists
		case errors.Is(err, ports.ErrForeignKeyViolation):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetMine returns nil without error when the caller has not created a profile yet.
func (s *profileService) GetMine(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.repo.Update(ctx, userID, update, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
