package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"github.com/vncsmyrnk/careerguide/internal/metrics"
	"go.uber.org/zap"
)

const DefaultGenerationTimeout = 60 * time.Second

var errNoUsableCompletion = errors.New("provider returned no usable completion")

type guidanceService struct {
	profiles ports.ProfileRepository
	messages ports.MessageRepository
	provider ports.CompletionProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewGuidanceService(
	profiles ports.ProfileRepository,
	messages ports.MessageRepository,
	provider ports.CompletionProvider,
	timeout time.Duration,
	logger *zap.Logger,
) ports.GuidanceService {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &guidanceService{
		profiles: profiles,
		messages: messages,
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *guidanceService) Generate(ctx context.Context, input ports.GenerateInput) (*domain.Message, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidMessageType
	}

	profile, err := s.profiles.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	prompt := BuildPrompt(input.Type, profile, input.Hint)

	completion, err := s.complete(ctx, prompt)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(input.Type), metrics.OutcomeFailure).Inc()
		s.logger.Warn("guidance generation failed",
			zap.String("user_id", input.UserID.String()),
			zap.String("msg_type", string(input.Type)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	message := &domain.Message{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Type:      input.Type,
		Response:  completion.Text,
		Tokens:    completion.Tokens,
		CreatedAt: time.Now().UTC(),
	}
	if hint := trimmed(input.Hint); hint != "" {
		message.Prompt = &hint
	}

	if err := s.messages.Create(ctx, message); err != nil {
		if errors.Is(err, ports.ErrForeignKeyViolation) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues(string(input.Type), metrics.OutcomeSuccess).Inc()
	metrics.GeneratedTokensTotal.WithLabelValues(string(input.Type)).Add(float64(completion.Tokens))

	return message, nil
}

func (s *guidanceService) complete(ctx context.Context, prompt string) (*domain.Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if completion == nil || trimmed(&completion.Text) == "" || completion.Tokens <= 0 {
		return nil, errNoUsableCompletion
	}
	return completion, nil
}

func (s *guidanceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return message, nil
}

func (s *guidanceService) List(ctx context.Context, page ports.Page) ([]*domain.Message, error) {
	page = page.Normalize()
	messages, err := s.messages.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *guidanceService) ListByUser(ctx context.Context, userID uuid.UUID, page ports.Page) ([]*domain.Message, error) {
	page = page.Normalize()
	messages, err := s.messages.ListByUser(ctx, userID, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Delete removes a message and returns the record as it was stored.
func (s *guidanceService) Delete(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	message, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}

	return message, nil
}
