package contract

import (
	"context"

	"pricebook-be/internal/entity"
)

type SettingRepository interface {
	// Get returns nil (not an error) when the key is absent.
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Set upserts: each key has at most one current value.
	Set(ctx context.Context, setting *entity.Setting) error
}
