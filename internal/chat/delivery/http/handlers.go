package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scripturecast/scripture-backend/internal/chat"
	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/logger"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type chatHandler struct {
	cfg    *config.Config
	chatUC chat.UseCase
	logger logger.Logger
}

func NewChatHandler(cfg *config.Config, chatUC chat.UseCase, logger logger.Logger) chat.Handler {
	return &chatHandler{
		cfg:    cfg,
		chatUC: chatUC,
		logger: logger,
	}
}

func (h *chatHandler) SendMessage() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		input := &models.ChatInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		conversation, err := h.chatUC.SendMessage(c.Request().Context(), user.UserID, input)
		if err != nil {
			if errors.Is(err, chat.ErrChatNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			h.logger.Errorf("SendMessage - %v, RequestID: %s", err, utils.GetRequestID(c))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, conversation)
	}
}

func (h *chatHandler) GetChat() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		chatID, err := uuid.Parse(c.Param("chat_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid chat id"})
		}

		conversation, err := h.chatUC.GetChat(c.Request().Context(), user.UserID, chatID)
		if err != nil {
			if errors.Is(err, chat.ErrChatNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, conversation)
	}
}

func (h *chatHandler) ListChats() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		pq, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		chats, err := h.chatUC.ListChats(c.Request().Context(), user.UserID, pq)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, chats)
	}
}

func (h *chatHandler) DeleteChat() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		chatID, err := uuid.Parse(c.Param("chat_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid chat id"})
		}

		if err = h.chatUC.DeleteChat(c.Request().Context(), user.UserID, chatID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "chat not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
