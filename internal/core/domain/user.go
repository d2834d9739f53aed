package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       *string   `json:"full_name"`
	HashedPassword string    `json:"-"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserUpdate carries the fields of a partial update. Nil and unset fields are left untouched.
type UserUpdate struct {
	Email    *string
	FullName Patch[string]
	Active   *bool
}

// NormalizeEmail is applied before an email is stored or looked up, so addresses
// differing only in case belong to one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
