package contract

import (
	"context"
	"time"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error
}
