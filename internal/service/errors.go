package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid       = errors.New("invalid request parameters")
	ErrUserNotFound       = errors.New("User does not exist")
	ErrUserEmailNotFound  = errors.New("No user found with that email")
	ErrEmailNotRegistered = errors.New("Invalid Email Its Not Registered")
	ErrInvalidEmail       = errors.New("Invalid Email Address")
	ErrEmailImmutable     = errors.New("You can't change email")
	ErrPasswordIncorrect  = errors.New("Invalid Password")
	ErrPostNotFound       = errors.New("Post does not exist")
	ErrLikeNotFound       = errors.New("Like does not exist")
	ErrNotPostOwner       = errors.New("Access Denied: You can only modify your own posts")
	ErrActionDuplicate    = errors.New("Post already liked")
	ErrMissingIdentifier  = errors.New("Provide user_id or email to export posts")
	ErrImageUpload        = errors.New("Failed to upload image")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserEmailNotFound:  NotFound,
	ErrEmailNotRegistered: NotFound,
	ErrInvalidEmail:       BadRequest,
	ErrEmailImmutable:     BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrPostNotFound:       NotFound,
	ErrLikeNotFound:       NotFound,
	ErrNotPostOwner:       Forbidden,
	ErrActionDuplicate:    BadRequest,
	ErrMissingIdentifier:  BadRequest,
	ErrImageUpload:        BadGateway,
	UnExpectedError:       InternalServerError,
}

// ValidationError 字段级校验失败，携带 字段->提示 映射
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
