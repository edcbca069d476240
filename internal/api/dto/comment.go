package dto

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	ShortID   uint64 `json:"short_id"`
	UserID    uint64 `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CommentCreateDTO 评论 - 新增
type CommentCreateDTO struct {
	ShortID uint64 `json:"short_id" binding:"required"`
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}
