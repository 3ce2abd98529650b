package memory

import (
	"context"
	"time"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SettingCache is a read-through decorator over a SettingRepository. The
// catalog refresh path reads the source location on every reload, so keys are
// held in memory and dropped on write.
type SettingCache struct {
	inner contract.SettingRepository
	cache *cache.Cache
}

func NewSettingCache(inner contract.SettingRepository) contract.SettingRepository {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SettingCache{
		inner: inner,
		cache: c,
	}
}

func (r *SettingCache) Get(ctx context.Context, key string) (*entity.Setting, error) {
	if x, found := r.cache.Get(key); found {
		return x.(*entity.Setting), nil
	}
	s, err := r.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if s != nil {
		r.cache.Set(key, s, cache.DefaultExpiration)
	}
	return s, nil
}

func (r *SettingCache) Set(ctx context.Context, setting *entity.Setting) error {
	if err := r.inner.Set(ctx, setting); err != nil {
		return err
	}
	r.cache.Delete(setting.Key)
	return nil
}
