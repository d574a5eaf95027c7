package http

import (
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/middleware"
	"github.com/scripturecast/scripture-backend/internal/progress"
)

func MapProgressRoutes(progressGroup *echo.Group, h progress.Handler, mw *middleware.MiddlewareManager) {
	progressGroup.Use(mw.AuthJWTMiddleware())
	progressGroup.POST("/read", h.MarkChapterRead())
	progressGroup.GET("", h.GetProgress())
	progressGroup.GET("/streak", h.GetStreak())
	progressGroup.POST("/verses", h.SaveVerse())
	progressGroup.GET("/verses", h.ListSavedVerses())
	progressGroup.DELETE("/verses/:saved_id", h.UnsaveVerse())
}
