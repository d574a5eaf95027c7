package http

import (
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/auth"
	"github.com/scripturecast/scripture-backend/internal/middleware"
)

func MapAuthRoutes(authGroup *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager) {
	authGroup.POST("/register", h.Register())
	authGroup.POST("/login", h.Login())
	authGroup.GET("/me", h.GetMe(), mw.AuthJWTMiddleware())
}
