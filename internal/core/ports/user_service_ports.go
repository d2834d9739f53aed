package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type CreateUserInput struct {
	Email    string
	FullName *string
	Password string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, page Page) ([]*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
