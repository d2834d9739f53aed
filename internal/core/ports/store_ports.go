package ports

import "errors"

// Integrity signals raised by repositories. Services translate them into domain errors.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type Page struct {
	Offset int
	Limit  int
}

// Normalize fills in the default limit and clamps out of range values.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
