package queries

import (
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/errs"
)

var ErrInvalidCursor = errs.Validation("invalid cursor")

// storeErr maps a read-store failure onto the public error taxonomy.
func storeErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Transient(err)
}
