package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/uy1-mgp/bff/repository"
)

var (
	ErrStudentNameRequired = errors.New("学生姓名为必填项")
	ErrNoValidEntries      = errors.New("没有有效的 UE")
	ErrInvalidEntries      = errors.New("存在不合法的 UE")
	ErrResultNotFound      = repository.ErrResultNotFound
	ErrDraftNotFound       = repository.ErrDraftNotFound
	ErrInvalidAction       = errors.New("不合法的草稿操作")
	ErrSubmissionInFlight  = errors.New("草稿正在计算中")
)

// ValidationError 本地校验失败，不会调用计算服务
type ValidationError struct {
	Reason error
	// Fields 形如 ues[1].note -> 原因
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", e.Reason, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ServiceError 计算服务调用失败或者返回了不合法的数据，可以重试
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "计算服务异常: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ExportError 导出成绩单失败，不影响已有结果
type ExportError struct {
	ResultId int64
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("导出成绩单 %d 失败: %s", e.ResultId, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
