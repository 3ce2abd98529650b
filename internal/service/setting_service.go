package service

import (
	"context"

	"pricebook-be/internal/constant"
	"pricebook-be/internal/dto"
	"pricebook-be/internal/entity"
	"pricebook-be/internal/repository/contract"
	"pricebook-be/pkg/catalog"
)

// CacheInvalidator is the signal the settings store sends the catalog cache
// when the source location changes. It does not trigger a reload by itself.
type CacheInvalidator interface {
	Invalidate()
}

type ISettingService interface {
	Get(ctx context.Context) (*dto.SettingResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingRequest) error
	// SourcePath resolves the current catalog source location, falling back
	// to the built-in default when the key was never written.
	SourcePath(ctx context.Context) (string, error)
}

type settingService struct {
	settings    contract.SettingRepository
	invalidator CacheInvalidator
}

func NewSettingService(settings contract.SettingRepository, invalidator CacheInvalidator) ISettingService {
	return &settingService{
		settings:    settings,
		invalidator: invalidator,
	}
}

func (s *settingService) Get(ctx context.Context) (*dto.SettingResponse, error) {
	path, err := s.SourcePath(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingResponse{DbPath: path}, nil
}

func (s *settingService) Update(ctx context.Context, req *dto.UpdateSettingRequest) error {
	err := s.settings.Set(ctx, &entity.Setting{
		Key:   constant.SourcePathSettingKey,
		Value: *req.DbPath,
	})
	if err != nil {
		return err
	}

	// The next snapshot request re-reads from the new location.
	s.invalidator.Invalidate()
	return nil
}

func (s *settingService) SourcePath(ctx context.Context) (string, error) {
	return resolveSourcePath(ctx, s.settings)
}

// NewSettingSourceProvider adapts the settings repository into the catalog
// cache's source collaborator. The cache manager is constructed before the
// setting service (which needs the manager as its invalidator), so the
// provider binds to the repository directly.
func NewSettingSourceProvider(settings contract.SettingRepository) catalog.SourceProvider {
	return catalog.SourceProviderFunc(func(ctx context.Context) (string, error) {
		return resolveSourcePath(ctx, settings)
	})
}

func resolveSourcePath(ctx context.Context, settings contract.SettingRepository) (string, error) {
	setting, err := settings.Get(ctx, constant.SourcePathSettingKey)
	if err != nil {
		return "", err
	}
	if setting == nil || setting.Value == "" {
		return constant.DefaultSourcePath, nil
	}
	return setting.Value, nil
}
