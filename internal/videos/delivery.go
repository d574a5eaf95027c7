package videos

import "github.com/labstack/echo/v4"

type Handler interface {
	RequestVideo() echo.HandlerFunc
	GetVideoStatus() echo.HandlerFunc
	GetPlaybackURL() echo.HandlerFunc
}
