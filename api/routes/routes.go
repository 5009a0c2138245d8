package routes

import (
	"time"

	"verimail/api/handler"
	"verimail/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	AuthMiddleware middleware.AuthMiddleware
	ResetGuard     middleware.ResetTokenGuard
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	authMiddleware middleware.AuthMiddleware,
	resetGuard middleware.ResetTokenGuard,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		AuthMiddleware: authMiddleware,
		ResetGuard:     resetGuard,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/sign-in", r.Auth.SignIn, r.LoginRate.Middleware())
	e.POST("/auth/verify-email", r.Auth.VerifyEmail, r.AuthRate.Middleware())
	e.POST("/auth/password/forgot", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.ResetPassword, r.AuthRate.Middleware(), r.ResetGuard.Validate)

	e.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)
}
