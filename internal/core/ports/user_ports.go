package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// Update merges the set fields into the stored row in one statement and returns the result.
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate, updatedAt time.Time) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
