package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/helpers"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

// AccountService is the session manager: sign-up, sign-in (password or
// federated), token refresh, and the profile mirror kept alongside the
// identity provider.
type AccountService struct {
	accountRepo models.AccountRepo
}

func NewAccountService(accountRepo models.AccountRepo) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (as *AccountService) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}
	// Policy check happens before the provider call is made.
	if !helpers.IsPasswordAcceptable(password) {
		return nil, models.ErrWeakPassword
	}

	res, err := as.accountRepo.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// Mirror the new identity into the profiles collection with the default
	// role. Failure here is surfaced: the account exists but the caller should
	// retry sign-in to complete the mirror.
	profile := &models.Profile{
		ID:    res.ID,
		Name:  displayName(res.UserMetadata, email),
		Email: email,
		Role:  models.RoleUser,
	}
	if err := as.accountRepo.UpsertProfile(ctx, profile, ""); err != nil {
		return res, err
	}

	return res, nil
}

func (as *AccountService) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	resp, err := as.accountRepo.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// Create-if-absent: full row on first sight, else merge last_login only.
	profile := &models.Profile{
		ID:       resp.User.ID,
		Name:     displayName(resp.User.UserMetadata, resp.User.Email),
		Email:    resp.User.Email,
		PhotoURL: photoURL(resp.User.UserMetadata),
		Role:     models.RoleUser,
	}
	if err := as.accountRepo.UpsertProfile(ctx, profile, resp.AccessToken); err != nil {
		return resp, err
	}

	return resp, nil
}

func (as *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", models.ErrValidation)
	}
	return as.accountRepo.RefreshToken(ctx, refreshToken)
}

func (as *AccountService) FederatedAuthURL(redirectTo string) (string, error) {
	return as.accountRepo.FederatedAuthURL(redirectTo)
}

func (as *AccountService) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*models.Profile, error) {
	return as.accountRepo.GetProfile(ctx, id, accessToken)
}

// profileMutableFields keeps callers from touching identity or role columns.
var profileMutableFields = map[string]bool{
	"name":      true,
	"photo_url": true,
}

func (as *AccountService) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Profile, error) {
	sanitized := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if profileMutableFields[key] {
			sanitized[key] = value
		}
	}
	if len(sanitized) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields", models.ErrValidation)
	}

	return as.accountRepo.UpdateProfile(ctx, sanitized, id, accessToken)
}

func displayName(metadata map[string]interface{}, email string) string {
	for _, key := range []string{"full_name", "name"} {
		if v, ok := metadata[key].(string); ok && v != "" {
			return v
		}
	}
	if email != "" {
		return email
	}
	return "User"
}

func photoURL(metadata map[string]interface{}) string {
	if v, ok := metadata["avatar_url"].(string); ok {
		return v
	}
	return ""
}
