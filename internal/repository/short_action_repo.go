package repository

import (
	"Biteflow/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShortActionRepo interface {
	ToggleLike(ctx context.Context, userID, shortID uint64) (bool, int64, error)
	CheckLikeExists(ctx context.Context, userID, shortID uint64) (bool, error)
	GetLikedShortIDs(ctx context.Context, userID uint64, shortIDs []uint64) ([]uint64, error)
	GetLikeCountByShortID(ctx context.Context, shortID uint64) (int64, error)

	CreateComment(ctx context.Context, comment *model.ShortComment) error
	GetCommentsByShortID(ctx context.Context, shortID uint64, limit, offset int) ([]*model.ShortComment, error)
	GetCommentCountByShortID(ctx context.Context, shortID uint64) (int64, error)

	IncrementViews(ctx context.Context, shortID uint64) error
}

type ShortActionRepoImpl struct {
	db *gorm.DB
}

func NewShortActionRepo(db *gorm.DB) ShortActionRepo {
	return &ShortActionRepoImpl{db}
}

// ToggleLike 原子翻转点赞状态：带唯一键冲突保护的插入和计数更新放在同一事务，
// 同一用户并发重复提交不会出现双插或双删，likes_count 与台账基数保持一致。
// 返回翻转后的状态与最新计数。
func (s *ShortActionRepoImpl) ToggleLike(ctx context.Context, userID, shortID uint64) (bool, int64, error) {
	var liked bool
	var likesCount int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.ShortLike{UserID: userID, ShortID: shortID, CreatedAt: time.Now()})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = true
			err := tx.Model(&model.Short{}).Where("id = ?", shortID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
			if err != nil {
				return err
			}
		} else {
			liked = false
			del := tx.Where("user_id = ? AND short_id = ?", userID, shortID).
				Delete(&model.ShortLike{})
			if del.Error != nil {
				return del.Error
			}
			if del.RowsAffected > 0 {
				err := tx.Model(&model.Short{}).
					Where("id = ? AND likes_count > 0", shortID).
					UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
				if err != nil {
					return err
				}
			}
		}

		return tx.Model(&model.Short{}).
			Select("likes_count").
			Where("id = ?", shortID).
			Scan(&likesCount).Error
	})
	return liked, likesCount, err
}

func (s *ShortActionRepoImpl) CheckLikeExists(ctx context.Context, userID, shortID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ShortLike{}).
		Where("user_id = ? AND short_id = ?", userID, shortID).
		Count(&count).Error
	return count > 0, err
}

// GetLikedShortIDs 批量查询用户在给定短视频集合中点过赞的 ID，用于信息流渲染
func (s *ShortActionRepoImpl) GetLikedShortIDs(ctx context.Context, userID uint64, shortIDs []uint64) ([]uint64, error) {
	if len(shortIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.ShortLike{}).
		Where("user_id = ? AND short_id IN ?", userID, shortIDs).
		Pluck("short_id", &ids).Error
	return ids, err
}

func (s *ShortActionRepoImpl) GetLikeCountByShortID(ctx context.Context, shortID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ShortLike{}).
		Where("short_id = ?", shortID).
		Count(&count).Error
	return count, err
}

// CreateComment 评论插入与 comments_count 自增在同一事务内
func (s *ShortActionRepoImpl) CreateComment(ctx context.Context, comment *model.ShortComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Short{}).Where("id = ?", comment.ShortID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// GetCommentsByShortID 分页获取短视频评论，新评论在前
func (s *ShortActionRepoImpl) GetCommentsByShortID(ctx context.Context, shortID uint64, limit, offset int) ([]*model.ShortComment, error) {
	var comments []*model.ShortComment
	err := s.db.WithContext(ctx).
		Where("short_id = ?", shortID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *ShortActionRepoImpl) GetCommentCountByShortID(ctx context.Context, shortID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ShortComment{}).
		Where("short_id = ?", shortID).
		Count(&count).Error
	return count, err
}

// IncrementViews 播放计数原子自增。至少一次语义，重试造成的轻微多计可以接受
func (s *ShortActionRepoImpl) IncrementViews(ctx context.Context, shortID uint64) error {
	res := s.db.WithContext(ctx).Model(&model.Short{}).
		Where("id = ? AND deleted_at IS NULL", shortID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
