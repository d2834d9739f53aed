package ports

import (
	"context"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(user *domain.User) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	RequireActive(user *domain.User) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Token, error)
}
