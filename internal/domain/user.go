package domain

import (
	"context"
	"time"
)

type SocialLinks struct {
	Website   *string `json:"website,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	X         *string `json:"x,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
}

type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	FirstName    *string     `json:"firstName,omitempty"`
	LastName     *string     `json:"lastName,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

type UserUsecase interface {
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
	UpdateCurrentUser(ctx context.Context, userID string, update *UserUpdate) (*User, error)
	DeleteCurrentUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, limit, offset int) ([]User, int64, error)
	DeleteUser(ctx context.Context, userID string) error
}

// UserUpdate carries the mutable profile fields; nil means "leave unchanged"
type UserUpdate struct {
	Username    *string
	Email       *string
	Password    *string
	FirstName   *string
	LastName    *string
	SocialLinks *SocialLinks
}
