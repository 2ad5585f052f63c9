// Package errs 定义领域错误类型。服务层在检测点返回这些错误，
// 由 response.Fail 统一映射为 HTTP 状态码。
//
//	if article.AuthorID != userID {
//	    return errs.Forbidden("Unauthorized")
//	}
//
//	if errors.Is(err, errs.ErrNotFound) { ... }
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindForbidden  Kind = "FORBIDDEN"
	KindConflict   Kind = "CONFLICT"
	KindAuth       Kind = "UNAUTHORIZED"
	KindValidation Kind = "VALIDATION"
)

// HTTPStatus 返回错误类别对应的HTTP状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error 领域错误
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 同类别即视为匹配
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithCause 附加底层错误，不改变对外消息
func (e *Error) WithCause(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, cause: err}
}

// 哨兵错误，配合 errors.Is 使用
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrForbidden  = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "conflict"}
	ErrAuth       = &Error{Kind: KindAuth, Message: "unauthorized"}
	ErrValidation = &Error{Kind: KindValidation, Message: "validation error"}
)

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Status 返回任意错误对应的HTTP状态码，非领域错误为500
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.HTTPStatus()
	}
	return http.StatusInternalServerError
}
