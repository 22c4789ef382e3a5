package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faukiofficial/Tokokita/models"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name  string
		role  models.Role
		roles []models.Role
		want  bool
	}{
		{"no roles required allows user", models.RoleUser, nil, true},
		{"no roles required allows admin", models.RoleAdmin, nil, true},
		{"matching single role", models.RoleUser, []models.Role{models.RoleUser}, true},
		{"role not in list", models.RoleUser, []models.Role{models.RoleAdmin}, false},
		{"admin only rejects user", models.RoleUser, []models.Role{models.RoleAdmin}, false},
		{"either role matches user", models.RoleUser, []models.Role{models.RoleUser, models.RoleAdmin}, true},
		{"either role matches admin", models.RoleAdmin, []models.Role{models.RoleUser, models.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{Role: tt.role}
			assert.Equal(t, tt.want, Authorize(user, tt.roles))
		})
	}
}
