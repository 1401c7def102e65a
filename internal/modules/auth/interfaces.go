package auth

import (
	"context"

	"githubsearch/internal/domain"
	"githubsearch/internal/modules/users"
)

// UserDirectory — only the user operations auth needs.
type UserDirectory interface {
	Create(ctx context.Context, in users.CreateUserInput) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TokenStore — persistence for per-user refresh secrets.
type TokenStore interface {
	FindActive(ctx context.Context, userID int64) (*domain.Token, error)
	FindOrCreate(ctx context.Context, userID int64, secret string) (*domain.Token, error)
	Revoke(ctx context.Context, t *domain.Token) error
}
