package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate, updatedAt time.Time) (*domain.User, error) {
	args := m.Called(ctx, id, update, updatedAt)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepo) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate, updatedAt time.Time) (*domain.Profile, error) {
	args := m.Called(ctx, userID, update, updatedAt)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, message *domain.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*domain.Message)
	return message, args.Error(1)
}

func (m *mockMessageRepo) List(ctx context.Context, offset, limit int) ([]*domain.Message, error) {
	args := m.Called(ctx, offset, limit)
	messages, _ := args.Get(0).([]*domain.Message)
	return messages, args.Error(1)
}

func (m *mockMessageRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Message, error) {
	args := m.Called(ctx, userID, offset, limit)
	messages, _ := args.Get(0).([]*domain.Message)
	return messages, args.Error(1)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (*domain.Completion, error) {
	args := m.Called(ctx, prompt)
	completion, _ := args.Get(0).(*domain.Completion)
	return completion, args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
