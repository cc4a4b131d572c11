// config/security_config.go
package config

import (
	"sort"
	"strings"

	"clubelect-backend/internal/domain"
)

// RouteRule maps a path prefix to the role required to reach it.
type RouteRule struct {
	PathPrefix   string
	RequiredRole domain.Role
}

// RouteSecurityConfig is the static table consulted by the HTTP auth
// middleware. Longest prefix wins; paths matching no rule are public.
// Admin surfaces are listed before their broader parents only for
// readability — matching sorts by prefix length, not table order.
var RouteSecurityConfig = []RouteRule{
	// Nomination management is admin-only; reading and applying is not.
	{PathPrefix: "/api/nominations/open", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/nominations/close", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/applications/review", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/applications", RequiredRole: domain.RoleUser},

	// Event lifecycle is admin-only; voting needs any authenticated member role.
	{PathPrefix: "/api/events/create", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/events/start", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/events/complete", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/events/cancel", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/votes", RequiredRole: domain.RoleUser},

	{PathPrefix: "/api/users/promote", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/clubs/join", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/clubs/create", RequiredRole: domain.RoleAdmin},
	{PathPrefix: "/api/notifications", RequiredRole: domain.RoleUser},
	{PathPrefix: "/api/me", RequiredRole: domain.RoleUser},
}

// RequiredRoleFor returns the required role for the given request path
// and whether any rule matched. Unmatched paths are unrestricted.
func RequiredRoleFor(path string) (domain.Role, bool) {
	rules := make([]RouteRule, len(RouteSecurityConfig))
	copy(rules, RouteSecurityConfig)
	sort.Slice(rules, func(i, j int) bool {
		return len(rules[i].PathPrefix) > len(rules[j].PathPrefix)
	})
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.PathPrefix) {
			return rule.RequiredRole, true
		}
	}
	return "", false
}
