package model

import (
	"time"
)

// ShortStatus 短视频派生状态，不落库，读取时根据时间计算
type ShortStatus string

const (
	ShortStatusScheduled ShortStatus = "scheduled"
	ShortStatusActive    ShortStatus = "active"
	ShortStatusExpired   ShortStatus = "expired"
)

// 限时短视频允许的有效时长（小时）
var AllowedDurationHours = []int{6, 12, 24, 48}

type Short struct {
	ID            uint64     `gorm:"primaryKey"`
	RestaurantID  uint64     `gorm:"not null;index:idx_restaurant_id" json:"restaurant_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:varchar(1000)" json:"description"`
	MediaURL      string     `gorm:"type:varchar(512);not null" json:"media_url"`
	ThumbnailURL  *string    `gorm:"type:varchar(512)" json:"thumbnail_url"`
	IsPermanent   bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_permanent"`
	DurationHours int        `gorm:"not null;default:0" json:"duration_hours"` // 0 表示永久短视频
	PublishAt     *time.Time `gorm:"precision:6" json:"publish_at"`            // null 表示创建即发布
	IsPaused      bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_paused"`
	ViewsCount    int64      `gorm:"not null;default:0" json:"views_count"`
	LikesCount    int64      `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int64      `gorm:"not null;default:0" json:"comments_count"`
	DeletedAt     *time.Time `gorm:"precision:6;index" json:"deleted_at"`
	CreatedAt     time.Time  `gorm:"precision:6;index:idx_created_at" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// 关联关系
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID;references:ID"`
}

func (Short) TableName() string {
	return "shorts"
}

// EffectivePublishAt 生效的发布时间，未指定 publish_at 时取创建时间
func (s *Short) EffectivePublishAt() time.Time {
	if s.PublishAt != nil {
		return *s.PublishAt
	}
	return s.CreatedAt
}

// ExpiresAt 过期时间，永久短视频返回 false
func (s *Short) ExpiresAt() (time.Time, bool) {
	if s.IsPermanent {
		return time.Time{}, false
	}
	return s.EffectivePublishAt().Add(time.Duration(s.DurationHours) * time.Hour), true
}

// Status 根据当前时间计算派生状态。永久短视频恒为 active；
// 限时短视频暂停等同于提前过期，记录与计数仍然保留。
func (s *Short) Status(now time.Time) ShortStatus {
	if s.IsPermanent {
		return ShortStatusActive
	}
	if now.Before(s.EffectivePublishAt()) {
		return ShortStatusScheduled
	}
	expiresAt, _ := s.ExpiresAt()
	if now.Before(expiresAt) && !s.IsPaused {
		return ShortStatusActive
	}
	return ShortStatusExpired
}

// FeedVisible 是否允许出现在任一信息流中
func (s *Short) FeedVisible(now time.Time) bool {
	if s.DeletedAt != nil {
		return false
	}
	if s.IsPaused {
		return false
	}
	return s.Status(now) == ShortStatusActive
}
