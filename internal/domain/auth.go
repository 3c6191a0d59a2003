package domain

import "context"

// AuthTokens is the access/refresh pair issued on register and login
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (*User, *AuthTokens, error)
	Login(ctx context.Context, email, password string) (*User, *AuthTokens, error)
	// RefreshAccessToken verifies a stored refresh token and mints a new
	// access token; the refresh token itself is not rotated.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	// GetCurrentUser is used by the auth middleware to load a fresh role on
	// every request instead of trusting a possibly stale token claim
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
}
