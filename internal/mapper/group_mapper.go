package mapper

import (
	"time"

	"pricebook-be/internal/entity"
	"pricebook-be/internal/model"
)

type GroupMapper struct{}

func NewGroupMapper() *GroupMapper {
	return &GroupMapper{}
}

func (m *GroupMapper) ToEntity(g *model.Group) *entity.Group {
	if g == nil {
		return nil
	}

	var updatedAt *time.Time
	if !g.UpdatedAt.IsZero() {
		t := g.UpdatedAt
		updatedAt = &t
	}

	return &entity.Group{
		Id:        g.Id,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *GroupMapper) ToModel(g *entity.Group) *model.Group {
	if g == nil {
		return nil
	}

	var updatedAt time.Time
	if g.UpdatedAt != nil {
		updatedAt = *g.UpdatedAt
	}

	return &model.Group{
		Id:        g.Id,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *GroupMapper) ToEntities(groups []*model.Group) []*entity.Group {
	entities := make([]*entity.Group, len(groups))
	for i, g := range groups {
		entities[i] = m.ToEntity(g)
	}
	return entities
}

type GroupItemMapper struct{}

func NewGroupItemMapper() *GroupItemMapper {
	return &GroupItemMapper{}
}

func (m *GroupItemMapper) ToEntity(gi *model.GroupItem) *entity.GroupItem {
	if gi == nil {
		return nil
	}
	return &entity.GroupItem{
		GroupId:   gi.GroupId,
		ItemId:    gi.ItemId,
		CreatedAt: gi.CreatedAt,
	}
}

func (m *GroupItemMapper) ToModel(gi *entity.GroupItem) *model.GroupItem {
	if gi == nil {
		return nil
	}
	return &model.GroupItem{
		GroupId:   gi.GroupId,
		ItemId:    gi.ItemId,
		CreatedAt: gi.CreatedAt,
	}
}

func (m *GroupItemMapper) ToEntities(items []*model.GroupItem) []*entity.GroupItem {
	entities := make([]*entity.GroupItem, len(items))
	for i, gi := range items {
		entities[i] = m.ToEntity(gi)
	}
	return entities
}
