// Package authz holds the permission decisions for mutating operations.
// Decisions are pure functions of the caller identity and the resource
// owner; enforcement (rejecting the request) happens at the service layer.
package authz

import (
	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/model"
)

// CanMutate reports whether caller may update or delete a resource owned by
// ownerID. Admins may mutate anything; everyone else only their own.
func CanMutate(caller model.User, ownerID uuid.UUID) bool {
	return caller.HasRole(model.RoleAdmin) || caller.ID == ownerID
}

// IsAdmin reports whether caller carries the ADMIN role.
func IsAdmin(caller model.User) bool {
	return caller.HasRole(model.RoleAdmin)
}
