package http

import (
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/videos"
)

func MapVideoRoutes(videoGroup *echo.Group, h videos.Handler) {
	videoGroup.POST("/generate", h.RequestVideo())
	videoGroup.GET("/status", h.GetVideoStatus())
	videoGroup.GET("/playback", h.GetPlaybackURL())
}
