package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate, updatedAt time.Time) (*domain.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type ProfileInput struct {
	Interests      *string
	Skills         *string
	EducationLevel *string
	Goals          *string
}

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, input ProfileInput) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetMine(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
