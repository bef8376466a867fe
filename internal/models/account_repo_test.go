package models

import (
	"net/url"
	"testing"
)

func TestAppendRedirect(t *testing.T) {
	authURL := "https://proj.supabase.co/auth/v1/authorize?provider=google"

	got := appendRedirect(authURL, "http://localhost:3000/auth/callback")

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("result did not parse: %v", err)
	}
	q := u.Query()
	if q.Get("provider") != "google" {
		t.Errorf("provider parameter lost, got %q", q.Get("provider"))
	}
	if q.Get("redirect_to") != "http://localhost:3000/auth/callback" {
		t.Errorf("redirect_to = %q, want callback URL", q.Get("redirect_to"))
	}
}

func TestAppendRedirectEmptyTarget(t *testing.T) {
	authURL := "https://proj.supabase.co/auth/v1/authorize?provider=google"
	if got := appendRedirect(authURL, ""); got != authURL {
		t.Errorf("empty target should leave the URL unchanged, got %q", got)
	}
}
