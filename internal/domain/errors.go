package domain

import "errors"

// 领域层哨兵错误，transport 层统一映射为 HTTP 状态码
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("booking dates conflict")
)
