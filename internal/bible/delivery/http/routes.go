package http

import (
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/internal/middleware"
)

func MapBibleRoutes(bibleGroup *echo.Group, h bible.Handler, mw *middleware.MiddlewareManager) {
	bibleGroup.GET("/books", h.ListBooks())
	bibleGroup.GET("/books/:book_number", h.GetBook())
	bibleGroup.GET("/books/:book_number/chapters/:chapter", h.GetChapter())
	bibleGroup.GET("/search", h.SearchVerses())
	bibleGroup.POST("/import", h.ImportBible(), mw.AuthJWTMiddleware())
}
