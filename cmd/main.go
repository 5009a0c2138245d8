package main

import (
	"net/http"
	"os"
	"time"

	"verimail/api/handler"
	apiMiddleware "verimail/api/middleware"
	"verimail/api/routes"
	"verimail/config"
	"verimail/internal/repository"
	"verimail/internal/service"
	"verimail/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectDB()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	jwtManager := utils.JWTManager{
		Secret:     secret,
		Issuer:     os.Getenv("JWT_ISSUER"),
		SessionTTL: 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	mailer := service.NewResendMailer(os.Getenv("RESEND_API_KEY"), os.Getenv("MAIL_FROM"))

	authService := service.NewAuthService(
		userRepo,
		tokenRepo,
		auditRepo,
		mailer,
		service.BcryptHasher{},
		service.JWTSessionIssuer{Manager: &jwtManager},
		service.RealClock{},
		logger,
		service.AuthConfig{
			OTPLength:      6,
			OTPTTL:         15 * time.Minute,
			ResetTokenSize: 32,
			ResetTokenTTL:  time.Hour,
			ResetLinkBase:  os.Getenv("APP_BASE_URL"),
		},
	)

	authHandler := handler.NewAuthHandler(authService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.NewRouter(
		app,
		authHandler,
		apiMiddleware.AuthMiddleware{JWT: &jwtManager},
		apiMiddleware.ResetTokenGuard{Service: authService},
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
