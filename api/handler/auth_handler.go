package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"verimail/api/middleware"
	"verimail/internal/dto"
	"verimail/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{Service: svc, Validate: validate}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password}
	user, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}

	payload := dto.UserPayloadFromEntity(user)
	payload.Verified = &user.Verified
	return c.JSON(http.StatusOK, dto.Envelope{Success: true, User: payload})
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.SignInInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.SignIn(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}

	payload := dto.UserPayloadFromEntity(result.User)
	payload.Token = result.Token
	return c.JSON(http.StatusOK, dto.Envelope{Success: true, User: payload})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req dto.VerifyEmailRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	user, err := h.Service.VerifyEmail(c.Request().Context(), req.UserID, req.OTP)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "your email is verified",
		User:    dto.UserPayloadFromEntity(user),
	})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "password reset link is sent to your email",
	})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	user, ok := middleware.ResetUserFromContext(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, errors.New("invalid request"))
	}
	var req dto.ResetPasswordRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ResetPassword(c.Request().Context(), user, req.Password); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "password reset successful",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.AuthUserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	user, err := h.Service.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	payload := dto.UserPayloadFromEntity(user)
	payload.Verified = &user.Verified
	return c.JSON(http.StatusOK, dto.Envelope{Success: true, User: payload})
}

func (h *AuthHandler) bind(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	if err := decoder.Decode(target); err != nil {
		return errors.New("malformed request body")
	}
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, dto.Envelope{Success: false, Message: err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	status := service.StatusCode(err)
	if status == http.StatusInternalServerError {
		return writeError(c, status, errors.New("something went wrong"))
	}
	return writeError(c, status, err)
}

func stringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
