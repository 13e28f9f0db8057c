package domain

import "testing"

func TestIsExactlyClient(t *testing.T) {
	cases := []struct {
		name  string
		roles []Role
		want  bool
	}{
		{"pure client", []Role{RoleClient}, true},
		{"promoted to staff", []Role{RoleClient, RoleStaff}, false},
		{"promoted to admin", []Role{RoleClient, RoleAdmin}, false},
		{"staff only", []Role{RoleStaff}, false},
		{"no roles", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRoleSet(tc.roles).IsExactlyClient(); got != tc.want {
				t.Fatalf("IsExactlyClient() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContentItemIsPublished(t *testing.T) {
	yes, no := true, false
	if (&ContentItem{Published: &yes}).IsPublished() != true {
		t.Fatal("explicit true must read published")
	}
	if (&ContentItem{Published: &no}).IsPublished() {
		t.Fatal("explicit false must read unpublished")
	}
	if (&ContentItem{}).IsPublished() {
		t.Fatal("unset flag must read unpublished")
	}
}
