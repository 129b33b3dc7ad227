package contract

import (
	"context"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/repository/specification"
)

type FarmRecordRepository interface {
	Create(ctx context.Context, record *entity.FarmRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FarmRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
