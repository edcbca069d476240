package handler

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/pkg/response"
	"Biteflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ShortHandler struct {
	shortSvc service.ShortService
	feedSvc  service.ShortFeedService
}

func NewShortHandler(shortSvc service.ShortService, feedSvc service.ShortFeedService) *ShortHandler {
	return &ShortHandler{
		shortSvc: shortSvc,
		feedSvc:  feedSvc,
	}
}

// CreateShort 发布短视频
func (s *ShortHandler) CreateShort(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ShortCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	short, err := s.shortSvc.CreateShort(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, short)
}

// GetShort 短视频详情，已过期但未删除的仍可直达
func (s *ShortHandler) GetShort(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	short, err := s.shortSvc.GetShort(c.Request.Context(), userID, shortID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, short)
}

// DeleteShort 删除短视频（软删除）
func (s *ShortHandler) DeleteShort(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err = s.shortSvc.DeleteShort(c.Request.Context(), userID, shortID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SetPaused 暂停/恢复短视频展示
func (s *ShortHandler) SetPaused(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ShortPauseDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	short, err := s.shortSvc.SetShortPaused(c.Request.Context(), userID, shortID, *req.Paused)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, short)
}

// GetFeed 全局发现流，游标分页
func (s *ShortHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	cursor := c.Query("cursor")
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(consts.DefaultFeedPageSize)))
	if err != nil {
		pageSize = consts.DefaultFeedPageSize
	}

	feed, err := s.feedSvc.GetFeed(c.Request.Context(), userID, cursor, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

// GetRestaurantFeed 餐厅主页的短视频列表
func (s *ShortHandler) GetRestaurantFeed(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil || restaurantID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	shorts, err := s.feedSvc.GetRestaurantFeed(c.Request.Context(), userID, restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, shorts)
}
