package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

// translateError turns integrity violations reported by postgres into the store
// signals services understand. Other errors pass through untouched.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w: %s", ports.ErrUniqueViolation, pqErr.Constraint)
	case "foreign_key_violation":
		return fmt.Errorf("%w: %s", ports.ErrForeignKeyViolation, pqErr.Constraint)
	default:
		return err
	}
}
