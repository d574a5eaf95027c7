package bible

import "github.com/labstack/echo/v4"

type Handler interface {
	ListBooks() echo.HandlerFunc
	GetBook() echo.HandlerFunc
	GetChapter() echo.HandlerFunc
	SearchVerses() echo.HandlerFunc
	ImportBible() echo.HandlerFunc
}
