package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupItem links a group to a catalog item id. ItemId is opaque text: it
// references the external table by value only, no foreign key exists.
type GroupItem struct {
	GroupId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemId    string    `gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GroupItem) TableName() string {
	return "group_items"
}
