package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/careerguide/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/careerguide/internal/adapters/repository/postgres/pgtest"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

func newUser(email string) *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: "hash",
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestIntegration_ConcurrentDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := pgtest.Start(t)
	repo := postgres.NewUserRepository(db)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), newUser("race@example.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ports.ErrUniqueViolation)
	}
	assert.Equal(t, 1, succeeded)
}

func TestIntegration_ProfilesAndMessages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := pgtest.Start(t)
	users := postgres.NewUserRepository(db)
	profiles := postgres.NewProfileRepository(db)
	messages := postgres.NewMessageRepository(db)

	user := newUser("owner@example.com")
	require.NoError(t, users.Create(ctx, user))

	interests := "math"
	profile := &domain.Profile{UserID: user.ID, Interests: &interests, CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt}
	require.NoError(t, profiles.Create(ctx, profile))

	err := profiles.Create(ctx, &domain.Profile{UserID: user.ID})
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)

	err = profiles.Create(ctx, &domain.Profile{UserID: uuid.New()})
	assert.ErrorIs(t, err, ports.ErrForeignKeyViolation)

	stored, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Interests)
	assert.Equal(t, "math", *stored.Interests)

	for i, msgType := range []domain.MessageType{domain.MessageTypeCareerPath, domain.MessageTypeRoadmap} {
		require.NoError(t, messages.Create(ctx, &domain.Message{
			ID:        uuid.New(),
			UserID:    user.ID,
			Type:      msgType,
			Response:  "advice",
			Tokens:    10 + i,
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}))
	}

	mine, err := messages.ListByUser(ctx, user.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, domain.MessageTypeCareerPath, mine[0].Type)

	page, err := messages.ListByUser(ctx, user.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, domain.MessageTypeRoadmap, page[0].Type)

	// deleting the owner cascades to the profile and messages
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err = profiles.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := messages.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestIntegration_ConcurrentDisjointPatches(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := pgtest.Start(t)
	users := postgres.NewUserRepository(db)
	profiles := postgres.NewProfileRepository(db)

	user := newUser("patch@example.com")
	require.NoError(t, users.Create(ctx, user))

	old := "old"
	require.NoError(t, profiles.Create(ctx, &domain.Profile{
		UserID: user.ID, Skills: &old, Goals: &old, CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt,
	}))

	const rounds = 20
	for i := range rounds {
		skills, goals := fmt.Sprintf("skills-%d", i), fmt.Sprintf("goals-%d", i)
		fullName := fmt.Sprintf("name-%d", i)
		active := i%2 == 0

		var wg sync.WaitGroup
		errs := make([]error, 4)
		patches := []func() error{
			func() error {
				_, err := profiles.Update(ctx, user.ID, domain.ProfileUpdate{Skills: domain.SetTo(skills)}, time.Now().UTC())
				return err
			},
			func() error {
				_, err := profiles.Update(ctx, user.ID, domain.ProfileUpdate{Goals: domain.SetTo(goals)}, time.Now().UTC())
				return err
			},
			func() error {
				_, err := users.Update(ctx, user.ID, domain.UserUpdate{FullName: domain.SetTo(fullName)}, time.Now().UTC())
				return err
			},
			func() error {
				_, err := users.Update(ctx, user.ID, domain.UserUpdate{Active: &active}, time.Now().UTC())
				return err
			},
		}
		for j, patch := range patches {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[j] = patch()
			}()
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		profile, err := profiles.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, skills, *profile.Skills)
		assert.Equal(t, goals, *profile.Goals)

		stored, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.FullName)
		assert.Equal(t, fullName, *stored.FullName)
		assert.Equal(t, active, stored.Active)
		assert.Equal(t, "patch@example.com", stored.Email)
	}

	cleared, err := profiles.Update(ctx, user.ID, domain.ProfileUpdate{Goals: domain.Cleared[string]()}, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, cleared.Goals)
	assert.NotNil(t, cleared.Skills)
}

func TestIntegration_EmailUniqueIgnoresCase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := pgtest.Start(t)
	users := postgres.NewUserRepository(db)

	require.NoError(t, users.Create(ctx, newUser("case@example.com")))

	err := users.Create(ctx, newUser("Case@Example.com"))
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)
}
