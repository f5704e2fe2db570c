package domain

import (
	"errors"
)

var (
	MessageSuccessSendVerify  = "verification email sent"
	MessageSuccessVerifyEmail = "email verified successfully"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Image    string `json:"image" validate:"omitempty,url"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	SendVerificationEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Image      string `json:"image,omitempty"`
		IsVerified bool   `json:"is_verified"`
	}

	UserLoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
