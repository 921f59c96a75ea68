package usecase

import (
	"fmt"

	"github.com/season-link/profiles/pkg/apperror"
)

// MutationEffect classifies the affected-row count of an update or delete.
// Zero rows means the resource is absent or not owned by the caller. More
// than one row means a supposedly-unique key matched several rows, which is
// a server-side invariant breach and must never pass as success.
func MutationEffect(rowsAffected int64, resource string) error {
	switch {
	case rowsAffected == 0:
		return apperror.NotFound(fmt.Sprintf("The %s does not exist", resource))
	case rowsAffected > 1:
		return apperror.Integrity(fmt.Sprintf("Too many rows affected for %s: %d", resource, rowsAffected))
	default:
		return nil
	}
}
