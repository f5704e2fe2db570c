package domain

import (
	"errors"
)

const (
	RoleUser = "user"
)

var (
	MessageUnauthorized        = "Unauthorized"
	MessageInternalServerError = "internal server error"
	MessageFailedBodyRequest   = "failed to parse request body"

	ErrParseUUID    = errors.New("failed to parse UUID")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
