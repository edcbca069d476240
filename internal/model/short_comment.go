package model

import (
	"time"
)

type ShortComment struct {
	ID        uint64    `gorm:"primaryKey"`
	ShortID   uint64    `gorm:"not null;index:idx_short_comment_short_id" json:"shortId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ShortComment) TableName() string {
	return "short_comments"
}
