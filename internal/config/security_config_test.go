package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubelect-backend/internal/domain"
)

func TestRequiredRoleFor(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		role    domain.Role
		matched bool
	}{
		{"AdminSubpathWinsOverUserPrefix", "/api/applications/review/3", domain.RoleAdmin, true},
		{"BroadUserPrefix", "/api/applications/mine", domain.RoleUser, true},
		{"EventLifecycle", "/api/events/complete/5", domain.RoleAdmin, true},
		{"Voting", "/api/votes", domain.RoleUser, true},
		{"UnlistedPathIsPublic", "/api/clubs", "", false},
		{"HealthCheckIsPublic", "/healthz", "", false},
		{"AuthIsPublic", "/api/auth/login", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, matched := RequiredRoleFor(tt.path)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.role, role)
		})
	}
}
