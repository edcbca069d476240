package handler

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/pkg/response"
	"Biteflow/internal/service"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type ShortActionHandler struct {
	actionSvc service.ShortActionService
}

func NewShortActionHandler(actionSvc service.ShortActionService) *ShortActionHandler {
	return &ShortActionHandler{
		actionSvc: actionSvc,
	}
}

// ToggleLike 点赞/取消点赞，同一用户重复请求在两个状态间翻转
func (s *ShortActionHandler) ToggleLike(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	res, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, shortID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// RecordView 上报浏览。立即应答，计数在后台落库
func (s *ShortActionHandler) RecordView(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	bgCtx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = s.actionSvc.RecordView(bgCtx, shortID)
	}()

	response.Success(c, nil)
}

// GetEngagementState 获取短视频详情页的全量互动状态
func (s *ShortActionHandler) GetEngagementState(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	ctx := c.Request.Context()
	state := &dto.ShortEngagementDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		state.LikeCount, _ = s.actionSvc.GetShortLikeCount(gCtx, shortID)
		return nil
	})
	g.Go(func() error {
		state.CommentCount, _ = s.actionSvc.GetShortCommentCount(gCtx, shortID)
		return nil
	})
	g.Go(func() error {
		state.ViewCount, _ = s.actionSvc.GetShortViewCount(gCtx, shortID)
		return nil
	})
	g.Go(func() error {
		if userID > 0 {
			state.IsLiked, _ = s.actionSvc.IsLiked(gCtx, userID, shortID)
		}
		return nil
	})

	_ = g.Wait()

	response.Success(c, state)
}

// CreateComment 发布评论
func (s *ShortActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// GetComments 获取短视频的评论列表
func (s *ShortActionHandler) GetComments(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}

	comments, err := s.actionSvc.GetCommentsByShortID(c.Request.Context(), shortID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
