package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

type AccountRepo interface {
	SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error)
	SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
	FederatedAuthURL(redirectTo string) (string, error)
	GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile, accessToken string) error
	UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error)
}

func ConvertToProfile(raw map[string]interface{}) (*Profile, error) {
	profileBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw profile: %v", err)
	}

	profile := &Profile{}
	if err := json.Unmarshal(profileBytes, profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal to profile struct: %v", err)
	}

	return profile, nil
}

func (su *SupabaseRepo) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	res, err := su.supabaseClient.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "already registered") || strings.Contains(errMsg, "already been registered") {
			return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyInUse, email)
		}
		if strings.Contains(errMsg, "password") {
			return nil, ErrWeakPassword
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return res, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh: %v", ErrAuthFailed, err)
	}
	return resp, nil
}

// FederatedAuthURL builds the provider authorize URL for the Google OAuth
// flow. Tokens come back to the client via the provider redirect. The client
// library carries no redirect target, so it is appended as redirect_to here.
func (su *SupabaseRepo) FederatedAuthURL(redirectTo string) (string, error) {
	resp, err := su.supabaseClient.Auth.Authorize(types.AuthorizeRequest{
		Provider: types.ProviderGoogle,
	})
	if err != nil {
		return "", fmt.Errorf("%w: authorize: %v", ErrAuthFailed, err)
	}
	return appendRedirect(resp.AuthorizationURL, redirectTo), nil
}

// appendRedirect adds redirect_to to an authorize URL, preserving the query
// parameters already present. An unparseable URL is returned unchanged.
func appendRedirect(authURL, redirectTo string) string {
	if redirectTo == "" {
		return authURL
	}
	u, err := url.Parse(authURL)
	if err != nil {
		return authURL
	}
	q := u.Query()
	q.Set("redirect_to", redirectTo)
	u.RawQuery = q.Encode()
	return u.String()
}

func (su *SupabaseRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid UUID", ErrValidation)
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		client = authClient
	}

	raw, status, err := client.From(ProfileTable).
		Select("id,name,email,photo_url,role,created_at,last_login", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("%w: postgrest status=%d body=%s: %v", ErrStore, status, string(raw), err)
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	// postgrest returns an array even for single results
	var profiles []Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("%w: unmarshal profile rows: %v", ErrStore, err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id.String())
	}

	return &profiles[0], nil
}

// UpsertProfile writes the full row the first time an identity is seen and
// merges only last_login on subsequent sign-ins.
func (su *SupabaseRepo) UpsertProfile(ctx context.Context, profile *Profile, accessToken string) error {
	existing, err := su.GetProfile(ctx, profile.ID, accessToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, cerr := su.GetAuthenticatedClient(accessToken)
		if cerr != nil {
			return fmt.Errorf("%w: %v", ErrStore, cerr)
		}
		client = authClient
	}

	now := time.Now()
	if existing == nil {
		if profile.Role == "" {
			profile.Role = RoleUser
		}
		profile.CreatedAt = now
		profile.LastLogin = now
		_, _, ierr := client.From(ProfileTable).
			Insert(profile, false, "", "", "").
			Execute()
		if ierr != nil {
			return fmt.Errorf("%w: insert profile: %v", ErrStore, ierr)
		}
		return nil
	}

	_, _, uerr := client.From(ProfileTable).
		Update(map[string]interface{}{"last_login": now}, "", "").
		Eq("id", profile.ID.String()).
		Execute()
	if uerr != nil {
		return fmt.Errorf("%w: update last_login: %v", ErrStore, uerr)
	}
	return nil
}

func (su *SupabaseRepo) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid UUID", ErrValidation)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		client = authClient
	}

	raw, count, err := client.From(ProfileTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: update profile: %v", ErrStore, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id.String())
	}

	var rawProfiles []map[string]interface{}
	if err := json.Unmarshal(raw, &rawProfiles); err != nil {
		return nil, fmt.Errorf("%w: unmarshal updated profile: %v", ErrStore, err)
	}
	if len(rawProfiles) == 0 {
		return nil, fmt.Errorf("%w: no profile data returned after update", ErrStore)
	}

	updated, err := ConvertToProfile(rawProfiles[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return updated, nil
}
