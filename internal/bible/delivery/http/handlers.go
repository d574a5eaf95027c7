package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type bibleHandler struct {
	bibleUC bible.UseCase
}

func NewBibleHandler(bibleUC bible.UseCase) bible.Handler {
	return &bibleHandler{
		bibleUC: bibleUC,
	}
}

func (h *bibleHandler) ListBooks() echo.HandlerFunc {
	return func(c echo.Context) error {
		books, err := h.bibleUC.ListBooks(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, books)
	}
}

func (h *bibleHandler) GetBook() echo.HandlerFunc {
	return func(c echo.Context) error {
		bookNumber, err := strconv.Atoi(c.Param("book_number"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid book number"})
		}
		book, err := h.bibleUC.GetBook(c.Request().Context(), bookNumber)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, book)
	}
}

func (h *bibleHandler) GetChapter() echo.HandlerFunc {
	return func(c echo.Context) error {
		bookNumber, err := strconv.Atoi(c.Param("book_number"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid book number"})
		}
		chapter, err := strconv.Atoi(c.Param("chapter"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid chapter"})
		}
		verses, err := h.bibleUC.GetChapter(c.Request().Context(), bookNumber, chapter)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, verses)
	}
}

func (h *bibleHandler) SearchVerses() echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("query")
		if query == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param is required"})
		}
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		verses, err := h.bibleUC.SearchVerses(c.Request().Context(), query, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, verses)
	}
}

func (h *bibleHandler) ImportBible() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := h.bibleUC.ImportBible(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}
}
