package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

// stubAuth resolves a fixed set of tokens without touching a store.
type stubAuth struct {
	users map[string]*domain.User
}

func (s *stubAuth) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (s *stubAuth) IssueToken(user *domain.User) (string, error) {
	return "", errors.New("not used")
}

func (s *stubAuth) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "expired" {
		return nil, domain.ErrTokenExpired
	}
	user, ok := s.users[token]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

func (s *stubAuth) RequireActive(user *domain.User) (*domain.User, error) {
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	return user, nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	if email == "a@x.com" && password == "pw1" {
		return &domain.Token{AccessToken: "good", TokenType: "bearer", ExpiresIn: 1800}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) List(ctx context.Context, page ports.Page) ([]*domain.User, error) {
	args := m.Called(ctx, page)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) Create(ctx context.Context, userID uuid.UUID, input ports.ProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, userID, input)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileService) GetMine(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileService) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	args := m.Called(ctx, userID, update)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockGuidanceService struct {
	mock.Mock
}

func (m *mockGuidanceService) Generate(ctx context.Context, input ports.GenerateInput) (*domain.Message, error) {
	args := m.Called(ctx, input)
	message, _ := args.Get(0).(*domain.Message)
	return message, args.Error(1)
}

func (m *mockGuidanceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*domain.Message)
	return message, args.Error(1)
}

func (m *mockGuidanceService) List(ctx context.Context, page ports.Page) ([]*domain.Message, error) {
	args := m.Called(ctx, page)
	messages, _ := args.Get(0).([]*domain.Message)
	return messages, args.Error(1)
}

func (m *mockGuidanceService) ListByUser(ctx context.Context, userID uuid.UUID, page ports.Page) ([]*domain.Message, error) {
	args := m.Called(ctx, userID, page)
	messages, _ := args.Get(0).([]*domain.Message)
	return messages, args.Error(1)
}

func (m *mockGuidanceService) Delete(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*domain.Message)
	return message, args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(ctx context.Context) error {
	return p.err
}
