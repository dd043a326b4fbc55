package types_test

import (
	"testing"

	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role types.Role
		want bool
	}{
		{"project manager", types.RolePM, true},
		{"risk controller", types.RoleRC, true},
		{"lowercase", types.Role("pm"), false},
		{"admin", types.Role("ADMIN"), false},
		{"empty", types.Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("Role.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
