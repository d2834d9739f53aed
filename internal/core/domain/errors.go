package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("could not validate credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrInactiveAccount      = errors.New("inactive user")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
	ErrPasswordTooLong      = errors.New("password must be at most 72 bytes")
	ErrInvalidMessageType   = errors.New("invalid message type")
	ErrNotFound             = errors.New("not found")
	ErrProfileMissing       = errors.New("profile not found, create one before requesting guidance")
	ErrGenerationFailed     = errors.New("generation failed")
	ErrInternal             = errors.New("internal server error")
)
