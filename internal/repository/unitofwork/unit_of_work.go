package unitofwork

import (
	"context"

	"pricebook-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GroupRepository() contract.GroupRepository
	GroupItemRepository() contract.GroupItemRepository
	SettingRepository() contract.SettingRepository
}
