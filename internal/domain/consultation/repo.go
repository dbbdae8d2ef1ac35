package consultation

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists consultation session snapshots.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
