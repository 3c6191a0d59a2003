package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.TokenRepository
	tokens      *auth.TokenManager
	adminEmails map[string]bool
}

func NewAuthUsecase(userRepo domain.UserRepository, tokenRepo domain.TokenRepository, tokens *auth.TokenManager, adminEmails []string) domain.AuthUsecase {
	whitelist := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		whitelist[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &authUsecase{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		tokens:      tokens,
		adminEmails: whitelist,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*domain.User, *domain.AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, nil, apperror.New(http.StatusConflict, apperror.CodeValidationError, "Email is already registered", nil)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = generateUsername()
	} else if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, nil, apperror.New(http.StatusConflict, apperror.CodeValidationError, "Username is already taken", nil)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	// Whitelisted emails become the blog's admin; everyone else is a reader
	role := domain.RoleUser
	if u.adminEmails[email] {
		role = domain.RoleAdmin
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := u.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	tokens, err := u.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (u *authUsecase) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	userID, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperror.Unauthorized("Invalid or expired refresh token")
	}

	// A valid signature is not enough: logout deletes the stored token, which
	// revokes the session before the JWT expires
	stored, err := u.tokenRepo.Exists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !stored {
		return "", apperror.Unauthorized("Refresh token has been revoked")
	}

	return u.tokens.GenerateAccessToken(userID)
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return u.tokenRepo.Delete(ctx, refreshToken)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized("User not found")
	}
	return user, err
}

func (u *authUsecase) issueTokens(ctx context.Context, userID string) (*domain.AuthTokens, error) {
	access, err := u.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, &domain.RefreshToken{
		Token:     refresh,
		UserID:    userID,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return &domain.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

func generateUsername() string {
	return "user-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
