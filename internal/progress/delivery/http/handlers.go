package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/progress"
	"github.com/scripturecast/scripture-backend/pkg/logger"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type markReadInput struct {
	BookNumber int `json:"book_number"`
	Chapter    int `json:"chapter"`
}

type progressHandler struct {
	cfg        *config.Config
	progressUC progress.UseCase
	logger     logger.Logger
}

func NewProgressHandler(cfg *config.Config, progressUC progress.UseCase, logger logger.Logger) progress.Handler {
	return &progressHandler{
		cfg:        cfg,
		progressUC: progressUC,
		logger:     logger,
	}
}

func (h *progressHandler) MarkChapterRead() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		input := &markReadInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		read, err := h.progressUC.MarkChapterRead(c.Request().Context(), user.UserID, input.BookNumber, input.Chapter)
		if err != nil {
			h.logger.Errorf("MarkChapterRead - %v, RequestID: %s", err, utils.GetRequestID(c))
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, read)
	}
}

func (h *progressHandler) GetProgress() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		books, err := h.progressUC.GetProgress(c.Request().Context(), user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, books)
	}
}

func (h *progressHandler) GetStreak() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		streak, err := h.progressUC.GetStreak(c.Request().Context(), user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, streak)
	}
}

func (h *progressHandler) SaveVerse() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		saved := &models.SavedVerse{}
		if err := c.Bind(saved); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		created, err := h.progressUC.SaveVerse(c.Request().Context(), user.UserID, saved)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func (h *progressHandler) UnsaveVerse() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		savedID, err := uuid.Parse(c.Param("saved_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid saved verse id"})
		}

		if err = h.progressUC.UnsaveVerse(c.Request().Context(), user.UserID, savedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "saved verse not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func (h *progressHandler) ListSavedVerses() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		verses, err := h.progressUC.ListSavedVerses(c.Request().Context(), user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, verses)
	}
}
