package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scripturecast/scripture-backend/internal/chat"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type chatRepo struct {
	db *sqlx.DB
}

func NewChatRepo(db *sqlx.DB) chat.Repository {
	return &chatRepo{
		db: db,
	}
}

func (r *chatRepo) Create(ctx context.Context, c *models.Chat) (*models.Chat, error) {
	created := &models.Chat{}
	if err := r.db.QueryRowxContext(
		ctx,
		createChatQuery,
		c.UserID,
		c.Title,
		c.VerseReference,
		c.Messages,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return created, nil
}

func (r *chatRepo) GetByID(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (*models.Chat, error) {
	c := &models.Chat{}
	if err := r.db.QueryRowxContext(
		ctx,
		getChatByIDQuery,
		chatID,
		userID,
	).StructScan(c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return c, nil
}

func (r *chatRepo) List(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.ChatList, error) {
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, getTotalChatsQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to get total chats count: %w", err)
	}
	if totalCount == 0 {
		return &models.ChatList{
			TotalCount: 0,
			TotalPages: 0,
			Page:       pq.GetPage(),
			Size:       pq.GetSize(),
			HasMore:    false,
			Chats:      make([]*models.Chat, 0),
		}, nil
	}
	rows, err := r.db.QueryxContext(ctx, listChatsQuery, userID, pq.GetOffset(), pq.GetLimit())
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer rows.Close()
	chats := make([]*models.Chat, 0, pq.GetSize())
	for rows.Next() {
		var c models.Chat
		if err = rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan chat: %w", err)
		}
		chats = append(chats, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan chats: %w", err)
	}
	return &models.ChatList{
		TotalCount: totalCount,
		TotalPages: utils.GetTotalPages(totalCount, pq.GetSize()),
		Page:       pq.GetPage(),
		Size:       pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
		Chats:      chats,
	}, nil
}

func (r *chatRepo) UpdateMessages(ctx context.Context, c *models.Chat) (*models.Chat, error) {
	updated := &models.Chat{}
	if err := r.db.QueryRowxContext(
		ctx,
		updateChatMessagesQuery,
		c.Messages,
		c.ChatID,
		c.UserID,
	).StructScan(updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update chat messages: %w", err)
	}
	return updated, nil
}

func (r *chatRepo) Delete(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteChatQuery, chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
