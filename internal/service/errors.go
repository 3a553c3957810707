package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrNoteNotFound      = errors.New("笔记不存在")
	ErrCatNotFound       = errors.New("猫咪角色不存在")
	ErrWeeklyRangeExist  = errors.New("该周期的数据已存在")
	ErrSyncRunning       = errors.New("同步任务进行中，请稍后再试")
	ErrSyncConfigMissing = errors.New("采集API配置缺失")
	ErrStoreUnavailable  = errors.New("数据存储不可用")
	ErrAgentUnavailable  = errors.New("AI助手暂时不可用")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrNoteNotFound:      NotFound,
	ErrCatNotFound:       NotFound,
	ErrWeeklyRangeExist:  BadRequest,
	ErrSyncRunning:       BadRequest,
	ErrSyncConfigMissing: InternalServerError,
	ErrStoreUnavailable:  InternalServerError,
	ErrAgentUnavailable:  BadGateway,
	UnExpectedError:      InternalServerError,
}
