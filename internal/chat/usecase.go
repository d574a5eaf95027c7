package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

var ErrChatNotFound = errors.New("chat not found")

type UseCase interface {
	SendMessage(ctx context.Context, userID uuid.UUID, input *models.ChatInput) (*models.Chat, error)
	GetChat(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (*models.Chat, error)
	ListChats(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.ChatList, error)
	DeleteChat(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) error
}
