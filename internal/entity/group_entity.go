package entity

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type GroupItem struct {
	GroupId   uuid.UUID
	ItemId    string
	CreatedAt time.Time
}
