package service

import (
	"time"

	"verimail/internal/entity"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type SignInInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type SignInResult struct {
	User      *entity.User
	Token     string
	ExpiresIn time.Duration
}
