package middleware

import (
	"verimail/internal/dto"
	"verimail/internal/service"

	"github.com/labstack/echo/v4"
)

// ResetTokenGuard validates the token+id pair from the reset link and makes
// the resolved user available to the downstream handler. The token itself is
// only consumed once the password change succeeds.
type ResetTokenGuard struct {
	Service *service.AuthService
}

func (g ResetTokenGuard) Validate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		id := c.QueryParam("id")

		user, err := g.Service.ValidateResetToken(c.Request().Context(), id, token)
		if err != nil {
			return c.JSON(service.StatusCode(err), dto.Envelope{Success: false, Message: err.Error()})
		}
		SetResetUser(c, user)
		return next(c)
	}
}
