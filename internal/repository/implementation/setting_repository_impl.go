package implementation

import (
	"context"
	"errors"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/mapper"
	"pricebook-be/internal/model"
	"pricebook-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingMapper
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingMapper(),
	}
}

func (r *SettingRepositoryImpl) Get(ctx context.Context, key string) (*entity.Setting, error) {
	var m model.Setting
	if err := r.db.WithContext(ctx).First(&m, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingRepositoryImpl) Set(ctx context.Context, setting *entity.Setting) error {
	m := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}
