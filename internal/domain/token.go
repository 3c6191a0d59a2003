package domain

import (
	"context"
	"time"
)

// RefreshToken is a stored refresh credential; deleting it revokes the
// session before the JWT itself expires.
type RefreshToken struct {
	Token     string    `json:"-"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

type TokenRepository interface {
	Store(ctx context.Context, token *RefreshToken) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
}
