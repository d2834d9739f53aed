package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompletionProvider sends a prompt to a remote text generation API.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (*domain.Completion, error)
}

type GenerateInput struct {
	UserID uuid.UUID
	Type   domain.MessageType
	Hint   *string
}

type GuidanceService interface {
	Generate(ctx context.Context, input GenerateInput) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	List(ctx context.Context, page Page) ([]*domain.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Message, error)
}
