package service

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/model"
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/pkg/util"
	"Biteflow/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ShortFeedService interface {
	GetFeed(ctx context.Context, viewerID uint64, cursor string, pageSize int) (*dto.ShortFeedDTO, error)
	GetRestaurantFeed(ctx context.Context, viewerID uint64, restaurantID uint64) ([]*dto.ShortDTO, error)
}

type shortFeedServiceImpl struct {
	shortRepo  repository.ShortRepo
	actionRepo repository.ShortActionRepo
}

func NewShortFeedService(shortRepo repository.ShortRepo, actionRepo repository.ShortActionRepo) ShortFeedService {
	return &shortFeedServiceImpl{
		shortRepo:  shortRepo,
		actionRepo: actionRepo,
	}
}

// GetFeed 全局发现流。按创建时间倒序的键集分页取候选，逐行计算状态，
// 只保留当前 active 且未暂停的短视频；过滤后不足一页就继续向前扫描。
// 返回的游标是本页最后一条记录的排序键，翻页期间的新插入不会
// 造成已翻过的行重复或遗漏。
func (s *shortFeedServiceImpl) GetFeed(ctx context.Context, viewerID uint64, cursor string, pageSize int) (*dto.ShortFeedDTO, error) {
	if pageSize <= 0 {
		pageSize = consts.DefaultFeedPageSize
	}
	if pageSize > consts.MaxFeedPageSize {
		pageSize = consts.MaxFeedPageSize
	}

	scanCursor, err := util.DecodeFeedCursor(cursor)
	if err != nil {
		log.WarnContext(ctx, "decode feed cursor error", "err", err)
		return nil, ErrParamInvalid
	}

	now := time.Now()
	targetSize := pageSize + 1
	collected := make([]*model.Short, 0, targetSize)

	for len(collected) < targetSize {
		batch, err := s.shortRepo.ListRecent(ctx, scanCursor, consts.FeedScanBatchSize)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		for _, short := range batch {
			if !short.FeedVisible(now) {
				continue
			}
			collected = append(collected, short)
			if len(collected) >= targetSize {
				break
			}
		}

		last := batch[len(batch)-1]
		scanCursor = &util.FeedCursor{CreatedAt: last.CreatedAt.UnixMicro(), ID: last.ID}
		if len(batch) < consts.FeedScanBatchSize {
			break
		}
	}

	hasMore := len(collected) > pageSize
	if hasMore {
		collected = collected[:pageSize]
	}

	items, err := s.annotate(ctx, viewerID, collected, now)
	if err != nil {
		return nil, err
	}

	var nextCursor string
	if len(collected) > 0 {
		last := collected[len(collected)-1]
		nextCursor = util.EncodeFeedCursor(last.CreatedAt, last.ID)
	}

	return &dto.ShortFeedDTO{
		List:       items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

// GetRestaurantFeed 餐厅主页流：永久短视频加当前在线的限时短视频，
// 创建时间倒序，不分页。
func (s *shortFeedServiceImpl) GetRestaurantFeed(ctx context.Context, viewerID uint64, restaurantID uint64) ([]*dto.ShortDTO, error) {
	shorts, err := s.shortRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := make([]*model.Short, 0, len(shorts))
	for _, short := range shorts {
		if short.FeedVisible(now) {
			visible = append(visible, short)
		}
	}

	return s.annotate(ctx, viewerID, visible, now)
}

// annotate 批量补充 is_liked 标记并转换为 DTO
func (s *shortFeedServiceImpl) annotate(ctx context.Context, viewerID uint64, shorts []*model.Short, now time.Time) ([]*dto.ShortDTO, error) {
	likedSet := make(map[uint64]struct{})
	if viewerID > 0 && len(shorts) > 0 {
		ids := make([]uint64, 0, len(shorts))
		for _, short := range shorts {
			ids = append(ids, short.ID)
		}
		likedIDs, err := s.actionRepo.GetLikedShortIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			likedSet[id] = struct{}{}
		}
	}

	items := make([]*dto.ShortDTO, 0, len(shorts))
	for _, short := range shorts {
		_, isLiked := likedSet[short.ID]
		items = append(items, toShortDTO(short, now, isLiked))
	}
	return items, nil
}
