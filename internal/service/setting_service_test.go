package service_test

import (
	"context"
	"testing"
	"time"

	"pricebook-be/internal/dto"
	"pricebook-be/internal/repository/implementation"
	"pricebook-be/internal/repository/memory"
	"pricebook-be/internal/service"
	"pricebook-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingGetReturnsSeededDefault(t *testing.T) {
	db := newTestDB(t)
	settingRepo := memory.NewSettingCache(implementation.NewSettingRepository(db))

	reader := &staticReader{}
	cache := catalog.NewManager(reader, service.NewSettingSourceProvider(settingRepo), nopLogger{},
		catalog.WithTTL(time.Hour))
	svc := service.NewSettingService(settingRepo, cache)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "items.DB", got.DbPath)
}

func TestSettingUpdateInvalidatesCatalogCache(t *testing.T) {
	db := newTestDB(t)
	settingRepo := memory.NewSettingCache(implementation.NewSettingRepository(db))

	reader := &staticReader{}
	cache := catalog.NewManager(reader, service.NewSettingSourceProvider(settingRepo), nopLogger{},
		catalog.WithTTL(time.Hour))
	svc := service.NewSettingService(settingRepo, cache)
	ctx := context.Background()

	cache.Snapshot(ctx)
	calls, source := reader.stats()
	require.Equal(t, 1, calls)
	assert.Equal(t, "items.DB", source)

	// Inside the TTL window the snapshot is reused
	cache.Snapshot(ctx)
	calls, _ = reader.stats()
	require.Equal(t, 1, calls)

	newPath := "/data/export_2025.csv"
	require.NoError(t, svc.Update(ctx, &dto.UpdateSettingRequest{DbPath: &newPath}))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, newPath, got.DbPath)

	// The update invalidated the snapshot, the next request re-reads from
	// the new location
	cache.Snapshot(ctx)
	calls, source = reader.stats()
	assert.Equal(t, 2, calls)
	assert.Equal(t, newPath, source)
}
