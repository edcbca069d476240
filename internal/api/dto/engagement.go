package dto

// ToggleLikeDTO 点赞翻转结果
type ToggleLikeDTO struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ShortEngagementDTO 短视频详情页的全量互动状态
type ShortEngagementDTO struct {
	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	IsLiked      bool  `json:"is_liked"`
}
