package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		wire string
		want Role
	}{
		{"ROLE_CUSTOMER", RoleCustomer},
		{"ROLE_STAFF", RoleStaff},
		{"ROLE_ADMIN", RoleAdmin},
		{"", RoleGuest},
		{"ROLE_WIZARD", RoleGuest},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.wire); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.wire, got, tt.want)
		}
	}
}

func TestRoleWireRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleStaff, RoleAdmin} {
		if got := ParseRole(r.Wire()); got != r {
			t.Errorf("ParseRole(%q) = %v, want %v", r.Wire(), got, r)
		}
	}
	if RoleGuest.Wire() != "" {
		t.Errorf("guest wire form = %q, want empty", RoleGuest.Wire())
	}
}

func TestRoleIsStaff(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleGuest, false},
		{RoleCustomer, false},
		{RoleStaff, true},
		{RoleAdmin, true},
	}
	for _, tt := range tests {
		if got := tt.role.IsStaff(); got != tt.want {
			t.Errorf("%v.IsStaff() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
