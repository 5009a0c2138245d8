package middleware

import (
	"verimail/internal/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextUserIDKey    = "auth_user_id"
	contextResetUserKey = "reset_user"
)

func SetAuthUserID(c echo.Context, userID uuid.UUID) {
	c.Set(contextUserIDKey, userID)
}

func AuthUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func SetResetUser(c echo.Context, user *entity.User) {
	c.Set(contextResetUserKey, user)
}

func ResetUserFromContext(c echo.Context) (*entity.User, bool) {
	value := c.Get(contextResetUserKey)
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}
