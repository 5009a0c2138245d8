package dto

import "verimail/internal/entity"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	UserID string `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// Envelope is the uniform response shape: {success, message?, user?}.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *UserPayload `json:"user,omitempty"`
}

type UserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ID       string `json:"id"`
	Verified *bool  `json:"verified,omitempty"`
	Token    string `json:"token,omitempty"`
}

func UserPayloadFromEntity(user *entity.User) *UserPayload {
	return &UserPayload{
		Name:  user.Name,
		Email: user.Email,
		ID:    user.ID.String(),
	}
}
