package repository

import (
	"Biteflow/internal/model"
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/pkg/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPermanentQuotaExceeded 永久短视频达到单餐厅上限，由事务内计数检查返回
var ErrPermanentQuotaExceeded = errors.New("permanent shorts quota exceeded")

type ShortRepo interface {
	CreateShort(ctx context.Context, short *model.Short) error
	GetShort(ctx context.Context, id uint64) (*model.Short, error)
	ListRecent(ctx context.Context, before *util.FeedCursor, limit int) ([]*model.Short, error)
	ListByRestaurant(ctx context.Context, restaurantID uint64) ([]*model.Short, error)
	ListIDs(ctx context.Context, limit int) ([]uint64, error)
	SoftDeleteShort(ctx context.Context, id uint64) error
	SetPaused(ctx context.Context, id uint64, paused bool) error
	UpdateShortCounts(ctx context.Context, id uint64, likes, comments int64) error
	CountPermanent(ctx context.Context, restaurantID uint64) (int64, error)
}

type ShortRepoImpl struct {
	db *gorm.DB
}

func NewShortRepository(db *gorm.DB) ShortRepo {
	return &ShortRepoImpl{
		db: db,
	}
}

// CreateShort 创建短视频。永久短视频的配额检查与插入在同一事务内完成，
// 避免两次并发创建都读到 14 再双双落库。
func (s *ShortRepoImpl) CreateShort(ctx context.Context, short *model.Short) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if short.IsPermanent {
			query := tx.Model(&model.Short{}).
				Where("restaurant_id = ? AND is_permanent = ? AND deleted_at IS NULL", short.RestaurantID, true)
			// REPEATABLE READ 下普通 Count 是快照读，并发创建会同时读到
			// 上限以下的值，这里升级为锁定读。sqlite 写事务本身互斥，
			// 且不支持 FOR UPDATE 语法
			if tx.Dialector.Name() == "mysql" {
				query = query.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			var count int64
			err := query.Count(&count).Error
			if err != nil {
				return err
			}
			if count >= consts.MaxPermanentShorts {
				return ErrPermanentQuotaExceeded
			}
		}
		return tx.Create(short).Error
	})
}

func (s *ShortRepoImpl) GetShort(ctx context.Context, id uint64) (*model.Short, error) {
	var short model.Short
	err := s.db.WithContext(ctx).Preload("Restaurant").First(&short, id).Error
	if err != nil {
		return nil, err
	}
	return &short, nil
}

// ListRecent 全局发现流的候选查询：按 (created_at, id) 降序的键集分页，
// 游标条件保证翻页期间的并发插入不会造成已读行重复或跳行。
// 软删除在 SQL 过滤，状态过滤交给上层按行计算。
func (s *ShortRepoImpl) ListRecent(ctx context.Context, before *util.FeedCursor, limit int) ([]*model.Short, error) {
	query := s.db.WithContext(ctx).Preload("Restaurant").
		Where("deleted_at IS NULL")
	if before != nil {
		query = query.Where("created_at < ? OR (created_at = ? AND id < ?)",
			before.CreatedAtTime(), before.CreatedAtTime(), before.ID)
	}
	var shorts []*model.Short
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&shorts).Error
	if err != nil {
		return nil, err
	}
	return shorts, nil
}

// ListByRestaurant 餐厅主页流的候选查询。不分页：永久短视频有 15 条上限，
// 加上少量在线的限时短视频，全量取回可以接受。
func (s *ShortRepoImpl) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]*model.Short, error) {
	var shorts []*model.Short
	err := s.db.WithContext(ctx).Preload("Restaurant").
		Where("restaurant_id = ? AND deleted_at IS NULL", restaurantID).
		Order("created_at DESC, id DESC").
		Find(&shorts).Error
	if err != nil {
		return nil, err
	}
	return shorts, nil
}

// ListIDs 对账任务兜底用：redis 不可用时扫描最近的短视频 ID
func (s *ShortRepoImpl) ListIDs(ctx context.Context, limit int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Short{}).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}

// SoftDeleteShort 软删除。deleted_at 一经写入不再变更，记录保留以供审计。
func (s *ShortRepoImpl) SoftDeleteShort(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Model(&model.Short{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ShortRepoImpl) SetPaused(ctx context.Context, id uint64, paused bool) error {
	res := s.db.WithContext(ctx).Model(&model.Short{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("is_paused", paused)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateShortCounts 将冗余计数回写为台账基数，由对账任务调用
func (s *ShortRepoImpl) UpdateShortCounts(ctx context.Context, id uint64, likes, comments int64) error {
	return s.db.WithContext(ctx).Model(&model.Short{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"likes_count":    likes,
			"comments_count": comments,
		}).Error
}

func (s *ShortRepoImpl) CountPermanent(ctx context.Context, restaurantID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Short{}).
		Where("restaurant_id = ? AND is_permanent = ? AND deleted_at IS NULL", restaurantID, true).
		Count(&count).Error
	return count, err
}
