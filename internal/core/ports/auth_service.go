package ports

import (
	"context"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// AuthService implements account registration and credential login.
type AuthService interface {
	// Register creates a donor account. The admin flag is always written
	// false regardless of input; escalation happens outside the API.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login exchanges email+password for a signed token and the resolved
	// profile. A credential that authenticates but has no profile document
	// yields domain.ErrUserNotFound and no token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile resolves the account behind an authenticated token, used for
	// session restore.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
