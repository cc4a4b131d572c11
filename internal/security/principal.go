package security

import (
	"clubelect-backend/internal/domain"
)

// Principal is the authenticated identity attached to an operation.
// It is always passed explicitly; no service consults ambient request
// state to find out who is calling.
type Principal struct {
	UserID int32
	Roles  []domain.Role
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(r domain.Role) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// Authorize is the role gate. A nil principal (no session) is always
// Unauthenticated; otherwise the required role must be in the
// principal's role set. Services call this themselves, so invoking an
// operation directly never bypasses authorization.
func Authorize(p *Principal, required domain.Role) error {
	if p == nil || len(p.Roles) == 0 {
		return domain.Unauthenticated("authentication required")
	}
	if !p.HasRole(required) {
		return domain.Forbidden("role %s required", required)
	}
	return nil
}

// AuthorizeAny allows the operation if the principal holds any of the
// listed roles. Used where USER and CANDIDATE are equally acceptable.
func AuthorizeAny(p *Principal, required ...domain.Role) error {
	if p == nil || len(p.Roles) == 0 {
		return domain.Unauthenticated("authentication required")
	}
	for _, r := range required {
		if p.HasRole(r) {
			return nil
		}
	}
	return domain.Forbidden("one of roles %v required", required)
}
