package service

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/model"
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/pkg/redis"
	"Biteflow/internal/pkg/util"
	"Biteflow/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const cacheExpiration = 7 * 24 * time.Hour

type ShortActionService interface {
	ToggleLike(ctx context.Context, userID, shortID uint64) (*dto.ToggleLikeDTO, error)
	IsLiked(ctx context.Context, userID, shortID uint64) (bool, error)
	GetShortLikeCount(ctx context.Context, shortID uint64) (int64, error)

	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetCommentsByShortID(ctx context.Context, shortID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	GetShortCommentCount(ctx context.Context, shortID uint64) (int64, error)

	RecordView(ctx context.Context, shortID uint64) error
	GetShortViewCount(ctx context.Context, shortID uint64) (int64, error)
}

type shortActionServiceImpl struct {
	actionRepo repository.ShortActionRepo
	shortRepo  repository.ShortRepo
}

func NewShortActionService(
	actionRepo repository.ShortActionRepo,
	shortRepo repository.ShortRepo,
) ShortActionService {
	return &shortActionServiceImpl{
		actionRepo: actionRepo,
		shortRepo:  shortRepo,
	}
}

// ToggleLike 点赞翻转。存在即删、不存在即插，配对调用互为逆操作，
// 底层由唯一键加事务保证计数与台账不漂移。
func (s *shortActionServiceImpl) ToggleLike(ctx context.Context, userID, shortID uint64) (*dto.ToggleLikeDTO, error) {
	if err := s.checkShort(ctx, shortID); err != nil {
		return nil, err
	}

	liked, likesCount, err := s.actionRepo.ToggleLike(ctx, userID, shortID)
	if err != nil {
		return nil, err
	}

	s.invalidateCount(ctx, consts.ShortLikeKey, shortID)
	s.markDirty(ctx, shortID)

	return &dto.ToggleLikeDTO{Liked: liked, LikesCount: likesCount}, nil
}

func (s *shortActionServiceImpl) IsLiked(ctx context.Context, userID, shortID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.actionRepo.CheckLikeExists(ctx, userID, shortID)
}

func (s *shortActionServiceImpl) GetShortLikeCount(ctx context.Context, shortID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.ShortLikeKey, shortID, func() (int64, error) {
		return s.actionRepo.GetLikeCountByShortID(ctx, shortID)
	})
}

func (s *shortActionServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	if err := s.checkShort(ctx, req.ShortID); err != nil {
		return nil, err
	}

	comment := &model.ShortComment{
		ShortID:   req.ShortID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCount(ctx, consts.ShortCommentKey, req.ShortID)
	s.markDirty(ctx, req.ShortID)

	return toCommentDTO(comment), nil
}

func (s *shortActionServiceImpl) GetCommentsByShortID(ctx context.Context, shortID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = consts.DefaultCommentPageSize
	}
	if pageSize > consts.MaxFeedPageSize {
		pageSize = consts.MaxFeedPageSize
	}

	if err := s.checkShort(ctx, shortID); err != nil {
		return nil, err
	}

	comments, err := s.actionRepo.GetCommentsByShortID(ctx, shortID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		res = append(res, toCommentDTO(comment))
	}
	return res, nil
}

func (s *shortActionServiceImpl) GetShortCommentCount(ctx context.Context, shortID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.ShortCommentKey, shortID, func() (int64, error) {
		return s.actionRepo.GetCommentCountByShortID(ctx, shortID)
	})
}

// RecordView 上报一次播放。只增不减，调用方以 fire-and-forget 方式触发，
// 失败由调用方记日志吞掉，不影响用户可见链路。
func (s *shortActionServiceImpl) RecordView(ctx context.Context, shortID uint64) error {
	if err := s.actionRepo.IncrementViews(ctx, shortID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShortNotFound
		}
		return err
	}
	if redis.Enabled() {
		_, _ = redis.Incr(ctx, consts.ShortViewKey+strconv.FormatUint(shortID, 10))
	}
	s.markDirty(ctx, shortID)
	return nil
}

func (s *shortActionServiceImpl) GetShortViewCount(ctx context.Context, shortID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.ShortViewKey, shortID, func() (int64, error) {
		short, err := s.shortRepo.GetShort(ctx, shortID)
		if err != nil || short == nil || short.DeletedAt != nil {
			return 0, ErrShortNotFound
		}
		return short.ViewsCount, nil
	})
}

func (s *shortActionServiceImpl) checkShort(ctx context.Context, shortID uint64) error {
	short, err := s.shortRepo.GetShort(ctx, shortID)
	if err != nil || short == nil || short.DeletedAt != nil {
		return ErrShortNotFound
	}
	return nil
}

// cachedCount 先查缓存，未命中回源台账并写回
func (s *shortActionServiceImpl) cachedCount(ctx context.Context, keyPrefix string, shortID uint64, load func() (int64, error)) (int64, error) {
	key := keyPrefix + strconv.FormatUint(shortID, 10)
	if redis.Enabled() {
		count, found, err := redis.GetInt64(ctx, key)
		if err == nil && found {
			return count, nil
		}
	}
	realCount, err := load()
	if err != nil {
		return 0, err
	}
	if redis.Enabled() {
		_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	}
	return realCount, nil
}

func (s *shortActionServiceImpl) invalidateCount(ctx context.Context, keyPrefix string, shortID uint64) {
	if redis.Enabled() {
		_ = redis.DeleteKey(ctx, keyPrefix+strconv.FormatUint(shortID, 10))
	}
}

// markDirty 记录被互动过的短视频 ID，供对账任务消费
func (s *shortActionServiceImpl) markDirty(ctx context.Context, shortID uint64) {
	if redis.Enabled() {
		_ = redis.SAdd(ctx, consts.ShortDirtyKey, strconv.FormatUint(shortID, 10))
	}
}
