package http

import (
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/chat"
	"github.com/scripturecast/scripture-backend/internal/middleware"
)

func MapChatRoutes(chatGroup *echo.Group, h chat.Handler, mw *middleware.MiddlewareManager) {
	chatGroup.Use(mw.AuthJWTMiddleware())
	chatGroup.POST("/messages", h.SendMessage())
	chatGroup.GET("", h.ListChats())
	chatGroup.GET("/:chat_id", h.GetChat())
	chatGroup.DELETE("/:chat_id", h.DeleteChat())
}
