package contract

import (
	"context"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GroupItemRepository interface {
	Add(ctx context.Context, item *entity.GroupItem) error
	Remove(ctx context.Context, groupId uuid.UUID, itemId string) error
	DeleteAllByGroupId(ctx context.Context, groupId uuid.UUID) error
	Exists(ctx context.Context, groupId uuid.UUID, itemId string) (bool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GroupItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
