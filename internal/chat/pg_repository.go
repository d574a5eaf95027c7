package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type Repository interface {
	Create(ctx context.Context, chat *models.Chat) (*models.Chat, error)
	GetByID(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (*models.Chat, error)
	List(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.ChatList, error)
	UpdateMessages(ctx context.Context, chat *models.Chat) (*models.Chat, error)
	Delete(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) error
}
