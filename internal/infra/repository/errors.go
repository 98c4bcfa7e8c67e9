package repository

import (
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/pgconv"
)

// classify maps driver errors onto repository error kinds.
func classify(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
