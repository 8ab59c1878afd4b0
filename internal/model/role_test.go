package model_test

import (
	"testing"

	"trade-custody/internal/model"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role    model.Role
		valid   bool
		isStaff bool
	}{
		{model.RoleAdmin, true, true},
		{model.RoleVolunteer, true, true},
		{model.RoleUser, true, false},
		{model.Role("admin"), false, false},
		{model.Role(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.role.IsStaff(); got != tt.isStaff {
				t.Errorf("IsStaff() = %v, want %v", got, tt.isStaff)
			}
		})
	}
}

func TestEnvironment(t *testing.T) {
	for _, env := range []model.Environment{model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction} {
		if !env.IsValid() {
			t.Errorf("%q should be valid", env)
		}
	}
	for _, env := range []model.Environment{"", "prod", "Production"} {
		if env.IsValid() {
			t.Errorf("%q should be invalid", env)
		}
	}
}
