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
	log "log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShortService interface {
	CreateShort(ctx context.Context, userID uint64, req *dto.ShortCreateDTO) (*dto.ShortDTO, error)
	GetShort(ctx context.Context, userID uint64, shortID uint64) (*dto.ShortDTO, error)
	DeleteShort(ctx context.Context, userID uint64, shortID uint64) error
	SetShortPaused(ctx context.Context, userID uint64, shortID uint64, paused bool) (*dto.ShortDTO, error)
}

type shortServiceImpl struct {
	shortRepo      repository.ShortRepo
	actionRepo     repository.ShortActionRepo
	restaurantRepo repository.RestaurantRepo
}

func NewShortService(
	shortRepo repository.ShortRepo,
	actionRepo repository.ShortActionRepo,
	restaurantRepo repository.RestaurantRepo,
) ShortService {
	return &shortServiceImpl{
		shortRepo:      shortRepo,
		actionRepo:     actionRepo,
		restaurantRepo: restaurantRepo,
	}
}

// CreateShort 创建短视频。永久短视频的配额由事务内的锁定读计数保证，
// Redis 配额锁只用于减少并发创建时的行锁等待，可降级缺省。
func (s *shortServiceImpl) CreateShort(ctx context.Context, userID uint64, req *dto.ShortCreateDTO) (*dto.ShortDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "create short param invalid", "err", err)
		return nil, ErrParamInvalid
	}

	restaurant, err := s.restaurantRepo.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}
	if restaurant.OwnerUserID != userID {
		return nil, ForbiddenError
	}

	now := time.Now()

	short := &model.Short{
		RestaurantID: req.RestaurantID,
		Title:        req.Title,
		Description:  req.Description,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		IsPermanent:  req.IsPermanent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if !req.IsPermanent {
		if !slices.Contains(model.AllowedDurationHours, req.DurationHours) {
			return nil, ErrDurationInvalid
		}
		short.DurationHours = req.DurationHours
	}

	if req.PublishAt != nil && *req.PublishAt != "" {
		publishAt, err := time.Parse(time.RFC3339, *req.PublishAt)
		if err != nil {
			return nil, ErrParamInvalid
		}
		if publishAt.Before(now) || publishAt.After(now.Add(consts.MaxPublishDelayHours*time.Hour)) {
			return nil, ErrPublishTimeInvalid
		}
		short.PublishAt = &publishAt
	}

	if req.IsPermanent && redis.Enabled() {
		lockKey := consts.ShortQuotaLock + strconv.FormatUint(req.RestaurantID, 10)
		lockUUID := uuid.NewString()
		ok, lockErr := redis.TryLock(ctx, lockKey, lockUUID, 5*time.Second, 10)
		if lockErr != nil || !ok {
			return nil, UnExpectedError
		}
		defer redis.UnLock(ctx, lockKey, lockUUID)
	}

	if err = s.shortRepo.CreateShort(ctx, short); err != nil {
		if errors.Is(err, repository.ErrPermanentQuotaExceeded) {
			return nil, ErrShortQuotaExceeded
		}
		return nil, err
	}

	short.Restaurant = *restaurant
	return toShortDTO(short, now, false), nil
}

// GetShort 详情查询。过期的短视频不出现在信息流，但仍可按 ID 取回；
// 软删除的记录对外视为不存在。
func (s *shortServiceImpl) GetShort(ctx context.Context, userID uint64, shortID uint64) (*dto.ShortDTO, error) {
	short, err := s.getShort(ctx, shortID)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if userID > 0 {
		isLiked, _ = s.actionRepo.CheckLikeExists(ctx, userID, shortID)
	}
	return toShortDTO(short, time.Now(), isLiked), nil
}

func (s *shortServiceImpl) DeleteShort(ctx context.Context, userID uint64, shortID uint64) error {
	if err := s.checkOwnership(ctx, userID, shortID); err != nil {
		return err
	}
	if err := s.shortRepo.SoftDeleteShort(ctx, shortID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShortNotFound
		}
		return err
	}
	return nil
}

func (s *shortServiceImpl) SetShortPaused(ctx context.Context, userID uint64, shortID uint64, paused bool) (*dto.ShortDTO, error) {
	if err := s.checkOwnership(ctx, userID, shortID); err != nil {
		return nil, err
	}
	if err := s.shortRepo.SetPaused(ctx, shortID, paused); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShortNotFound
		}
		return nil, err
	}
	short, err := s.getShort(ctx, shortID)
	if err != nil {
		return nil, err
	}
	return toShortDTO(short, time.Now(), false), nil
}

func (s *shortServiceImpl) getShort(ctx context.Context, shortID uint64) (*model.Short, error) {
	short, err := s.shortRepo.GetShort(ctx, shortID)
	if err != nil || short == nil || short.DeletedAt != nil {
		return nil, ErrShortNotFound
	}
	return short, nil
}

func (s *shortServiceImpl) checkOwnership(ctx context.Context, userID uint64, shortID uint64) error {
	short, err := s.getShort(ctx, shortID)
	if err != nil {
		return err
	}
	restaurant, err := s.restaurantRepo.GetRestaurant(ctx, short.RestaurantID)
	if err != nil {
		return ErrRestaurantNotFound
	}
	if restaurant.OwnerUserID != userID {
		return ForbiddenError
	}
	return nil
}
