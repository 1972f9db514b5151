package port

import (
	"context"

	"github.com/google/uuid"

	"klagedok/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListByCapability returns every active user holding the capability; this
	// is the candidate population for bulk access resolution.
	ListByCapability(ctx context.Context, capability domain.Capability) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
