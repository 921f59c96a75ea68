package domain

import "github.com/google/uuid"

// CtxKey is the key type for request-scoped values.
type CtxKey string

const (
	KeyIdentity  CtxKey = "Identity"
	KeyRequestID CtxKey = "RequestID"
)

// Role is a trusted role forwarded by the gateway.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
	// RoleUnknown covers any token this service does not recognize. Carrying
	// it instead of erroring keeps role parsing total: unknown tokens simply
	// grant nothing.
	RoleUnknown Role = "unknown"
)

// RoleFromToken maps a gateway role token onto a Role. Every input maps to
// something; unrecognized tokens map to RoleUnknown.
func RoleFromToken(token string) Role {
	switch token {
	case "client_candidate":
		return RoleCandidate
	case "client_admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Identity is the caller identity assembled from the gateway's forwarded
// headers. It is trusted as-is; this service performs no authentication of
// its own.
type Identity struct {
	UserID    uuid.UUID
	Roles     []Role
	RequestID uuid.UUID
}

// HasRole reports whether the identity carries the given role.
func (i *Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
