package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID         uuid.UUID `json:"user_id"`
	Interests      *string   `json:"interests"`
	Skills         *string   `json:"skills"`
	EducationLevel *string   `json:"education_level"`
	Goals          *string   `json:"goals"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdate carries the fields of a partial update. Unset fields are left untouched.
type ProfileUpdate struct {
	Interests      Patch[string]
	Skills         Patch[string]
	EducationLevel Patch[string]
	Goals          Patch[string]
}
