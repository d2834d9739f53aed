package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"go.uber.org/zap"
)

const tokenTypeBearer = "bearer"

type AuthService struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   *TokenIssuer
	logger   *zap.Logger

	// compared against when the email is unknown so both paths cost one hash check
	dummyHash string
}

func NewAuthService(userRepo ports.UserRepository, hasher ports.PasswordHasher, tokens *TokenIssuer, logger *zap.Logger) (*AuthService, error) {
	dummyHash, err := hasher.Hash("careerguide-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		dummyHash: dummyHash,
	}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.hasher.Compare(s.dummyHash, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *AuthService) RequireActive(user *domain.User) (*domain.User, error) {
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if _, err := s.RequireActive(user); err != nil {
		return nil, err
	}

	accessToken, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("issued access token", zap.String("user_id", user.ID.String()))

	return &domain.Token{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}
