package ports

import (
	"context"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// UserRepository defines persistence for donor accounts. Accounts are never
// deleted by this system.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
