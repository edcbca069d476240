package service

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

func toShortDTO(short *model.Short, now time.Time, isLiked bool) *dto.ShortDTO {
	d := &dto.ShortDTO{}
	_ = copier.Copy(d, short)
	d.Status = string(short.Status(now))
	d.CreatedAt = short.CreatedAt.Format(time.RFC3339)
	if short.PublishAt != nil {
		d.PublishAt = short.PublishAt.Format(time.RFC3339)
	}
	d.IsLiked = isLiked
	d.RestaurantName = short.Restaurant.Name
	d.RestaurantLogo = short.Restaurant.LogoURL
	return d
}

func toCommentDTO(comment *model.ShortComment) *dto.CommentDTO {
	d := &dto.CommentDTO{}
	_ = copier.Copy(d, comment)
	d.CreatedAt = comment.CreatedAt.Format(time.RFC3339)
	return d
}
