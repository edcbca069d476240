package dto

// ShortDTO 短视频
type ShortDTO struct {
	// Short
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	MediaURL      string  `json:"media_url"`
	ThumbnailURL  *string `json:"thumbnail_url,omitempty"`
	IsPermanent   bool    `json:"is_permanent"`
	DurationHours int     `json:"duration_hours,omitempty"`
	PublishAt     string  `json:"publish_at,omitempty"`
	IsPaused      bool    `json:"is_paused"`
	Status        string  `json:"status"`
	ViewsCount    int64   `json:"views_count"`
	LikesCount    int64   `json:"likes_count"`
	CommentsCount int64   `json:"comments_count"`
	CreatedAt     string  `json:"created_at"`
	IsLiked       bool    `json:"is_liked"`

	// Restaurant
	RestaurantID   uint64 `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	RestaurantLogo string `json:"restaurant_logo"`
}

// ShortCreateDTO 短视频 - 新增
type ShortCreateDTO struct {
	RestaurantID  uint64  `json:"restaurant_id" binding:"required"`
	Title         string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Description   string  `json:"description" validate:"max=1000"`
	MediaURL      string  `json:"media_url" binding:"required" validate:"min=1,max=512"`
	ThumbnailURL  *string `json:"thumbnail_url" validate:"omitempty,max=512"`
	IsPermanent   bool    `json:"is_permanent"`
	DurationHours int     `json:"duration_hours"`
	PublishAt     *string `json:"publish_at"` // RFC3339，空表示立即发布
}

// ShortPauseDTO 短视频 - 暂停/恢复
type ShortPauseDTO struct {
	Paused *bool `json:"paused" binding:"required"`
}

// ShortFeedDTO 信息流分页结果
type ShortFeedDTO struct {
	List       []*ShortDTO `json:"list"`
	NextCursor string      `json:"next_cursor"`
	HasMore    bool        `json:"has_more"`
}
