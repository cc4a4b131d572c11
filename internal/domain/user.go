package domain

import "time"

type Role string

const (
	RoleUser      Role = "USER"
	RoleCandidate Role = "CANDIDATE"
	RoleAdmin     Role = "ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleCandidate, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Roles        []Role    `json:"roles"`
	Clubs        []Club    `json:"clubs,omitempty"` // Populated when needed
	CreatedOn    time.Time `json:"created_on"`
}

// HasRole reports whether the user holds the given role. Roles are
// additive; nothing in this service ever removes one.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}
