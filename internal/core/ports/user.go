package ports

import (
	"context"

	"taskdeck/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	// Login returns the authenticated user and a signed session token.
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	// ResolveSession verifies the token and re-fetches the user so a deleted
	// account cannot keep using an old token.
	ResolveSession(ctx context.Context, token string) (domain.User, error)
}
