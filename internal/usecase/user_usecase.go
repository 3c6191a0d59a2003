package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	userRepo     domain.UserRepository
	tokenRepo    domain.TokenRepository
	defaultLimit int
}

func NewUserUsecase(userRepo domain.UserRepository, tokenRepo domain.TokenRepository, defaultLimit int) domain.UserUsecase {
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	return &userUsecase{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		defaultLimit: defaultLimit,
	}
}

func (u *userUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	return user, err
}

func (u *userUsecase) UpdateCurrentUser(ctx context.Context, userID string, update *domain.UserUpdate) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if update.Username != nil && *update.Username != user.Username {
		username := strings.TrimSpace(*update.Username)
		if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
			return nil, apperror.BadRequest("Username is already taken")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Username = username
	}
	if update.Email != nil && !strings.EqualFold(*update.Email, user.Email) {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
			return nil, apperror.BadRequest("Email is already registered")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if update.FirstName != nil {
		user.FirstName = update.FirstName
	}
	if update.LastName != nil {
		user.LastName = update.LastName
	}
	if update.SocialLinks != nil {
		user.SocialLinks = *update.SocialLinks
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) DeleteCurrentUser(ctx context.Context, userID string) error {
	return u.deleteUser(ctx, userID)
}

func (u *userUsecase) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if limit < 1 {
		limit = u.defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.userRepo.Fetch(ctx, limit, offset)
}

func (u *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	return u.deleteUser(ctx, userID)
}

func (u *userUsecase) deleteUser(ctx context.Context, userID string) error {
	// Revoke sessions first so a deleted account cannot refresh
	if err := u.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}

	err := u.userRepo.Delete(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("User not found")
	}
	return err
}
