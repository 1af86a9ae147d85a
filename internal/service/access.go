package service

import (
	"github.com/spec-kit/fitness-tracker/internal/auth"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// authorizeOwner is the single ownership gate used by every resource
// operation: admins may touch any row, everyone else only their own.
func authorizeOwner(principal *auth.Principal, ownerID int64) error {
	if principal.IsAdmin() || principal.UserID() == ownerID {
		return nil
	}
	return apperrors.NewForbidden("you do not own this resource")
}
