package commands

import (
	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Caller is the authenticated user a command runs for.
type Caller struct {
	UserID       uuid.UUID
	Role         user.Role
	AssignmentID *uuid.UUID
	Origin       audit.Origin
}

// storeErr maps repository failures onto the public taxonomy. Errors that did not come
// from a repository pass through untouched.
func storeErr(err error, notFound error) error {
	var re infra.RepositoryError
	if !errs.As(err, &re) {
		return err
	}
	switch re.Kind {
	case infra.KindNotFound:
		if notFound != nil {
			return notFound
		}
		return errs.Mark(err, errs.ErrNotFound)
	case infra.KindDuplicateKey:
		return errs.Mark(err, errs.ErrConflict)
	case infra.KindForeignKeyViolated:
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Transient(err)
	}
}
