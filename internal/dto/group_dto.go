package dto

import "github.com/google/uuid"

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type RenameGroupRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type GroupResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AddGroupItemRequest struct {
	GroupId uuid.UUID `json:"group_id" validate:"required"`
	ItemId  string    `json:"item_id" validate:"required"`
}
