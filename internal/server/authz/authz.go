// Package authz decides whether a verified identity may act on a resource.
package authz

import (
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
)

// CanAccess reports whether the actor owns the resource or is an admin.
// Pure function, no side effects.
func CanAccess(actor *auth.Claims, ownerID int64) bool {
	if actor == nil {
		return false
	}
	return actor.UserID == ownerID || actor.IsAdmin
}

// Authorize returns common.ErrorAccessDenied unless CanAccess allows
// the actor.
func Authorize(actor *auth.Claims, ownerID int64) error {
	if !CanAccess(actor, ownerID) {
		return common.ErrorAccessDenied
	}
	return nil
}
