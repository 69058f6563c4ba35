package record

import "testing"

func TestParseAccessTypeDefaultsToPortal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want AccessType
	}{
		{"BOTH", AccessBoth},
		{"OPENCHAT", AccessOpenChat},
		{"PORTAL", AccessPortal},
		{"", AccessPortal},
		{"portal", AccessPortal},
		{"EVERYTHING", AccessPortal},
	}
	for _, tc := range cases {
		if got := ParseAccessType(tc.in); got != tc.want {
			t.Fatalf("ParseAccessType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseChangeStatusDefaultsToAdd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want ChangeStatus
	}{
		{"ADD", StatusAdd},
		{"DELETE", StatusDelete},
		{"UNCHANGE", StatusUnchange},
		{"UPDATE", StatusUpdate},
		{"", StatusAdd},
		{"REMOVE", StatusAdd},
	}
	for _, tc := range cases {
		if got := ParseChangeStatus(tc.in); got != tc.want {
			t.Fatalf("ParseChangeStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoleIDFor(t *testing.T) {
	t.Parallel()

	if got := RoleIDFor("User"); got != RoleIDUser {
		t.Fatalf("RoleIDFor(User) = %d", got)
	}
	if got := RoleIDFor("Publisher"); got != RoleIDPublisher {
		t.Fatalf("RoleIDFor(Publisher) = %d", got)
	}
	if got := RoleIDFor("Admin"); got != RoleIDUser {
		t.Fatalf("RoleIDFor(Admin) = %d, want default %d", got, RoleIDUser)
	}
	if got := RoleIDFor(""); got != RoleIDUser {
		t.Fatalf("RoleIDFor(\"\") = %d, want default %d", got, RoleIDUser)
	}
}
