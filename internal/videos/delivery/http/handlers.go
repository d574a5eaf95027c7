package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type videoHandler struct {
	videoUC videos.UseCase
}

func NewVideoHandler(videoUC videos.UseCase) videos.Handler {
	return &videoHandler{
		videoUC: videoUC,
	}
}

func (h *videoHandler) RequestVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.VideoRequestInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err := utils.ValidateStruct(c.Request().Context(), input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		video, err := h.videoUC.RequestVideo(c.Request().Context(), input.BookNumber, input.Chapter)
		if err != nil {
			if errors.Is(err, videos.ErrBookNotFound) || errors.Is(err, videos.ErrChapterNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) GetVideoStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		bookNumber, chapter, err := chapterParams(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		video, err := h.videoUC.GetVideoStatus(c.Request().Context(), bookNumber, chapter)
		if err != nil {
			if errors.Is(err, videos.ErrVideoNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) GetPlaybackURL() echo.HandlerFunc {
	return func(c echo.Context) error {
		bookNumber, chapter, err := chapterParams(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		url, err := h.videoUC.GetPlaybackURL(c.Request().Context(), bookNumber, chapter)
		if err != nil {
			if errors.Is(err, videos.ErrVideoNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"playback_url": url})
	}
}

func chapterParams(c echo.Context) (int, int, error) {
	bookNumber, err := strconv.Atoi(c.QueryParam("book_number"))
	if err != nil || bookNumber < 1 {
		return 0, 0, errors.New("book_number query param is required")
	}
	chapter, err := strconv.Atoi(c.QueryParam("chapter"))
	if err != nil || chapter < 1 {
		return 0, 0, errors.New("chapter query param is required")
	}
	return bookNumber, chapter, nil
}
