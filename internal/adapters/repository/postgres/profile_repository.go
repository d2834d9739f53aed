package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ports.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

const profileColumns = `user_id, interests, skills, education_level, goals, created_at, updated_at`

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.UserID,
		&profile.Interests,
		&profile.Skills,
		&profile.EducationLevel,
		&profile.Goals,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, interests, skills, education_level, goals, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.UserID, profile.Interests, profile.Skills, profile.EducationLevel, profile.Goals,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return translateError(err)
}

// Update applies only the set fields, so concurrent patches of different fields
// do not overwrite each other.
func (r *profileRepository) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate, updatedAt time.Time) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET interests = CASE WHEN $2::boolean THEN $3::text ELSE interests END,
			skills = CASE WHEN $4::boolean THEN $5::text ELSE skills END,
			education_level = CASE WHEN $6::boolean THEN $7::text ELSE education_level END,
			goals = CASE WHEN $8::boolean THEN $9::text ELSE goals END,
			updated_at = $10
		WHERE user_id = $1
		RETURNING ` + profileColumns
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query,
		userID,
		update.Interests.Set, update.Interests.Value,
		update.Skills.Set, update.Skills.Value,
		update.EducationLevel.Set, update.EducationLevel.Value,
		update.Goals.Set, update.Goals.Value,
		updatedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, translateError(err)
	}
	return profile, nil
}

func (r *profileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
