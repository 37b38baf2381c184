package domain

import "testing"

func TestUser_AddRole_Idempotent(t *testing.T) {
	u := &User{}

	u.AddRole(RoleUser)
	u.AddRole(RoleUser)
	if len(u.Roles) != 1 {
		t.Fatalf("expected 1 role after duplicate grant, got %v", u.Roles)
	}

	u.AddRole(RoleAdmin)
	if len(u.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %v", u.Roles)
	}
	if !u.HasRole(RoleUser) || !u.HasRole(RoleAdmin) {
		t.Fatalf("missing granted role: %v", u.Roles)
	}
	if u.HasRole("ROLE_OTHER") {
		t.Fatalf("HasRole reported an ungranted role")
	}
}
