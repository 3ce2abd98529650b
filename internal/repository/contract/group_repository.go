package contract

import (
	"context"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
