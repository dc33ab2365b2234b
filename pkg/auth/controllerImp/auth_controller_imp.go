package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/auth/controller"
	"agriai/pkg/middleware"
)

type authCtrl struct {
	users        middleware.UserResolver
	demoUsername string
	log          *zap.Logger
}

func NewAuthController(users middleware.UserResolver, demoUsername string, log *zap.Logger) controller.AuthController {
	return &authCtrl{users: users, demoUsername: demoUsername, log: log}
}

// DevLogin switches the browser to ?username= (the demo user when empty) by
// setting the identity cookie.
func (h *authCtrl) DevLogin(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("username"))
	if name == "" {
		name = h.demoUsername
	}
	u, err := h.users.Resolve(c.Request().Context(), name)
	if err != nil {
		return apperr.Write(c, h.log, err, "User not found", "Failed to resolve user")
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.UserCookie,
		Value:    u.Username,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"id": u.ID, "username": u.Username})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"id": middleware.UserID(c), "username": middleware.Username(c)})
}
