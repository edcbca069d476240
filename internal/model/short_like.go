package model

import (
	"time"
)

type ShortLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ShortID   uint64    `gorm:"primaryKey;index:idx_short_like_short_id" json:"shortId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ShortLike) TableName() string {
	return "short_likes"
}
