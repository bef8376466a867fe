package helpers

import "testing"

func TestIsPasswordAcceptable(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"secret1", true},
		{"123456", true},
		{"12345", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsPasswordAcceptable(tc.password); got != tc.want {
			t.Errorf("IsPasswordAcceptable(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestAvatarPublicID(t *testing.T) {
	got := AvatarPublicID("abc-123")
	want := "profile_pictures/abc-123"
	if got != want {
		t.Errorf("AvatarPublicID = %q, want %q", got, want)
	}
}
