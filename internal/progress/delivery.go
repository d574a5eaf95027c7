package progress

import "github.com/labstack/echo/v4"

type Handler interface {
	MarkChapterRead() echo.HandlerFunc
	GetProgress() echo.HandlerFunc
	GetStreak() echo.HandlerFunc
	SaveVerse() echo.HandlerFunc
	UnsaveVerse() echo.HandlerFunc
	ListSavedVerses() echo.HandlerFunc
}
