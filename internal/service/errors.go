package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrShortNotFound        = errors.New("短视频不存在")
	ErrRestaurantNotFound   = errors.New("餐厅不存在")
	ErrShortCommentNotFound = errors.New("评论不存在")
	ErrShortQuotaExceeded   = errors.New("永久短视频数量已达上限")
	ErrPublishTimeInvalid   = errors.New("发布时间超出允许范围")
	ErrDurationInvalid      = errors.New("有效时长不在允许范围")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ForbiddenError          = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrShortNotFound:        NotFound,
	ErrRestaurantNotFound:   NotFound,
	ErrShortCommentNotFound: NotFound,
	ErrShortQuotaExceeded:   BadRequest,
	ErrPublishTimeInvalid:   BadRequest,
	ErrDurationInvalid:      BadRequest,
	ErrFileNotSupported:     BadRequest,
	ForbiddenError:          Forbidden,
	UnExpectedError:         InternalServerError,
}
