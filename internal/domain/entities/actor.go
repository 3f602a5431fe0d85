package entities

import "github.com/google/uuid"

// Permission is a capability tag granted to an actor
type Permission string

const (
	PermissionMerchantCreate Permission = "merchants:create"
	PermissionMerchantEdit   Permission = "merchants:edit"
	PermissionMerchantReview Permission = "merchants:review"
	PermissionAuditView      Permission = "audit:view"
	PermissionDFSPManage     Permission = "dfsps:manage"
	PermissionUserManage     Permission = "users:manage"
)

// Role is a named bundle of permissions assigned to a staff user
type Role string

const (
	RoleOperator   Role = "operator"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// PermissionSet is the capability set carried by an authenticated actor
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from individual permissions
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// PermissionsFromStrings builds a set from serialized tags (e.g. JWT claims)
func PermissionsFromStrings(tags []string) PermissionSet {
	set := make(PermissionSet, len(tags))
	for _, t := range tags {
		set[Permission(t)] = struct{}{}
	}
	return set
}

// Has reports whether the set grants the permission
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Strings serializes the set for token claims
func (s PermissionSet) Strings() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, string(p))
	}
	return out
}

// RolePermissions maps a role to its granted capability set.
// Operators make drafts; supervisors additionally check them.
func RolePermissions(role Role) PermissionSet {
	switch role {
	case RoleOperator:
		return NewPermissionSet(PermissionMerchantCreate, PermissionMerchantEdit)
	case RoleSupervisor:
		return NewPermissionSet(
			PermissionMerchantCreate,
			PermissionMerchantEdit,
			PermissionMerchantReview,
			PermissionAuditView,
		)
	case RoleAdmin:
		return NewPermissionSet(
			PermissionMerchantCreate,
			PermissionMerchantEdit,
			PermissionMerchantReview,
			PermissionAuditView,
			PermissionDFSPManage,
			PermissionUserManage,
		)
	default:
		return NewPermissionSet()
	}
}

// Actor is the authenticated identity acting on a record
type Actor struct {
	ID          uuid.UUID
	Email       string
	Permissions PermissionSet
}

// Can reports whether the actor holds the permission
func (a *Actor) Can(p Permission) bool {
	return a.Permissions.Has(p)
}
