// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess               ErrorCode = "0"
	CodeUnknown               ErrorCode = "1000"
	CodeInvalidParam          ErrorCode = "1001"
	CodeNotFound              ErrorCode = "1004"
	CodeInternalError         ErrorCode = "1007"
	CodeServiceUnavailable    ErrorCode = "1008"
	CodeUnknownEndingType     ErrorCode = "1009"
	CodeInvalidReferenceImage ErrorCode = "1010"

	// 业务错误 (4xxx)
	CodeScenarioFailed      ErrorCode = "4001"
	CodeImagePromptFailed   ErrorCode = "4002"
	CodeImageFailed         ErrorCode = "4003"
	CodeEmptyProviderResult ErrorCode = "4004"

	// 外部服务错误 (5xxx)
	CodeProviderNotConfigured ErrorCode = "5001"
	CodeLLMProviderError      ErrorCode = "5005"
	CodeImageProviderError    ErrorCode = "5006"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeUnknownEndingType, CodeInvalidReferenceImage:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeScenarioFailed, CodeImagePromptFailed, CodeImageFailed, CodeEmptyProviderResult,
		CodeLLMProviderError, CodeImageProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam          = New(CodeInvalidParam, "invalid parameter")
	ErrNotFound              = New(CodeNotFound, "resource not found")
	ErrInternalError         = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable    = New(CodeServiceUnavailable, "service unavailable")
	ErrProviderNotConfigured = New(CodeProviderNotConfigured, "generation provider is not configured")
)

// IsAppError 检查错误链中是否包含 AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternalError, "internal server error")
}

// IsCode 判断错误链中的 AppError 是否为指定错误码
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
