package implementation

import (
	"context"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/mapper"
	"pricebook-be/internal/model"
	"pricebook-be/internal/repository/contract"
	"pricebook-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GroupItemMapper
}

func NewGroupItemRepository(db *gorm.DB) contract.GroupItemRepository {
	return &GroupItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewGroupItemMapper(),
	}
}

func (r *GroupItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GroupItemRepositoryImpl) Add(ctx context.Context, item *entity.GroupItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *GroupItemRepositoryImpl) Remove(ctx context.Context, groupId uuid.UUID, itemId string) error {
	// No error when the pair is absent, removal is idempotent.
	return r.db.WithContext(ctx).
		Where("group_id = ? AND item_id = ?", groupId, itemId).
		Delete(&model.GroupItem{}).Error
}

func (r *GroupItemRepositoryImpl) DeleteAllByGroupId(ctx context.Context, groupId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("group_id = ?", groupId).
		Delete(&model.GroupItem{}).Error
}

func (r *GroupItemRepositoryImpl) Exists(ctx context.Context, groupId uuid.UUID, itemId string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GroupItem{}).
		Where("group_id = ? AND item_id = ?", groupId, itemId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GroupItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GroupItem, error) {
	var models []*model.GroupItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GroupItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GroupItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
