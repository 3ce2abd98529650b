package service

import (
	"context"
	"fmt"
	"time"

	"pricebook-be/internal/dto"
	"pricebook-be/internal/entity"
	"pricebook-be/internal/pkg/apperr"
	"pricebook-be/internal/repository/specification"
	"pricebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGroupService interface {
	List(ctx context.Context) ([]*dto.GroupResponse, error)
	Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error)
	Rename(ctx context.Context, req *dto.RenameGroupRequest) (*dto.GroupResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, req *dto.AddGroupItemRequest) error
	RemoveItem(ctx context.Context, groupId uuid.UUID, itemId string) error
	ListItems(ctx context.Context, groupId uuid.UUID) ([]string, error)
}

type groupService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGroupService(uowFactory unitofwork.RepositoryFactory) IGroupService {
	return &groupService{
		uowFactory: uowFactory,
	}
}

// List returns all groups ordered by name. Export numbering depends on this
// ordering being deterministic.
func (s *groupService) List(ctx context.Context) ([]*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, &dto.GroupResponse{Id: g.Id, Name: g.Name})
	}
	return result, nil
}

func (s *groupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GroupRepository()

	existing, err := repo.FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("create group %q: %w", req.Name, apperr.ErrDuplicateName)
	}

	group := entity.Group{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, &group); err != nil {
		return nil, err
	}

	return &dto.GroupResponse{Id: group.Id, Name: group.Name}, nil
}

func (s *groupService) Show(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %s: %w", id, apperr.ErrNotFound)
	}

	return &dto.GroupResponse{Id: group.Id, Name: group.Name}, nil
}

func (s *groupService) Rename(ctx context.Context, req *dto.RenameGroupRequest) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GroupRepository()

	group, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %s: %w", req.Id, apperr.ErrNotFound)
	}

	holder, err := repo.FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if holder != nil && holder.Id != group.Id {
		return nil, fmt.Errorf("rename group to %q: %w", req.Name, apperr.ErrDuplicateName)
	}

	now := time.Now()
	group.Name = req.Name
	group.UpdatedAt = &now
	if err := repo.Update(ctx, group); err != nil {
		return nil, err
	}

	return &dto.GroupResponse{Id: group.Id, Name: group.Name}, nil
}

// Delete removes the group and all its memberships in one transaction.
// Deleting an unknown id is not an error.
func (s *groupService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.GroupItemRepository().DeleteAllByGroupId(ctx, id); err != nil {
		return err
	}
	if err := uow.GroupRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *groupService) AddItem(ctx context.Context, req *dto.AddGroupItemRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: req.GroupId})
	if err != nil {
		return err
	}
	if group == nil {
		return fmt.Errorf("group %s: %w", req.GroupId, apperr.ErrNotFound)
	}

	exists, err := uow.GroupItemRepository().Exists(ctx, req.GroupId, req.ItemId)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("item %s in group %s: %w", req.ItemId, req.GroupId, apperr.ErrDuplicateMember)
	}

	return uow.GroupItemRepository().Add(ctx, &entity.GroupItem{
		GroupId:   req.GroupId,
		ItemId:    req.ItemId,
		CreatedAt: time.Now(),
	})
}

func (s *groupService) RemoveItem(ctx context.Context, groupId uuid.UUID, itemId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.GroupItemRepository().Remove(ctx, groupId, itemId)
}

// ListItems returns the item ids of a group in insertion order, empty when
// the group has none or does not exist.
func (s *groupService) ListItems(ctx context.Context, groupId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.GroupItemRepository().FindAll(ctx,
		specification.ByGroupID{GroupID: groupId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ItemId)
	}
	return ids, nil
}
