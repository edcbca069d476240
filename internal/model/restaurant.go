package model

import (
	"time"
)

// Restaurant 餐厅档案由目录服务维护，这里只读：
// 校验归属权以及信息流渲染所需的展示字段。
type Restaurant struct {
	ID          uint64    `gorm:"primaryKey"`
	OwnerUserID uint64    `gorm:"not null;index:idx_owner_user_id" json:"owner_user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	LogoURL     string    `gorm:"type:varchar(512)" json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
