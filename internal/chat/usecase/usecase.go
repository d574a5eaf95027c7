package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/scripturecast/scripture-backend/internal/chat"
	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/logger"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

const maxTitleChars = 50

const chatSystemPrompt = "You are a warm, knowledgeable Bible study companion. " +
	"Answer questions about scripture with pastoral care, cite book, chapter and verse when relevant, " +
	"and keep responses encouraging and concise."

type chatUC struct {
	cfg      *config.Config
	chatRepo chat.Repository
	client   *openai.Client
	logger   logger.Logger
}

func NewChatUseCase(cfg *config.Config, chatRepo chat.Repository, log logger.Logger) chat.UseCase {
	uc := &chatUC{
		cfg:      cfg,
		chatRepo: chatRepo,
		logger:   log,
	}
	if cfg.OpenAI.APIKey == "" {
		log.Warn("openai API key not configured, chat completions disabled")
		return uc
	}
	uc.client = openai.NewClient(cfg.OpenAI.APIKey)
	return uc
}

func (u *chatUC) SendMessage(ctx context.Context, userID uuid.UUID, input *models.ChatInput) (*models.Chat, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if u.client == nil {
		return nil, errors.New("openai API key not configured")
	}

	conversation, err := u.resolveChat(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	conversation.Messages = append(conversation.Messages, models.ChatMessage{
		Role:    models.ChatRoleUser,
		Content: input.Message,
	})

	reply, err := u.complete(ctx, conversation)
	if err != nil {
		u.logger.Errorf("SendMessage - completion failed for chat %s: %v", conversation.ChatID, err)
		return nil, err
	}
	conversation.Messages = append(conversation.Messages, models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: reply,
	})

	updated, err := u.chatRepo.UpdateMessages(ctx, conversation)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, chat.ErrChatNotFound
	}
	return updated, nil
}

func (u *chatUC) GetChat(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (*models.Chat, error) {
	conversation, err := u.chatRepo.GetByID(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, chat.ErrChatNotFound
	}
	return conversation, nil
}

func (u *chatUC) ListChats(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.ChatList, error) {
	return u.chatRepo.List(ctx, userID, pq)
}

func (u *chatUC) DeleteChat(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) error {
	return u.chatRepo.Delete(ctx, userID, chatID)
}

// resolveChat loads the existing conversation or starts a new one titled
// after the opening message.
func (u *chatUC) resolveChat(ctx context.Context, userID uuid.UUID, input *models.ChatInput) (*models.Chat, error) {
	if input.ChatID != nil {
		existing, err := u.chatRepo.GetByID(ctx, userID, *input.ChatID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, chat.ErrChatNotFound
		}
		return existing, nil
	}

	newChat := &models.Chat{
		UserID:   userID,
		Title:    chatTitle(input.Message),
		Messages: models.ChatMessages{},
	}
	if input.Verse != nil {
		ref := fmt.Sprintf("%d:%d:%d", input.Verse.BookNumber, input.Verse.Chapter, input.Verse.Verse)
		newChat.VerseReference = &ref
	}
	return u.chatRepo.Create(ctx, newChat)
}

func (u *chatUC) complete(ctx context.Context, conversation *models.Chat) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conversation.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt,
	})
	for _, m := range conversation.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := u.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       u.cfg.OpenAI.ChatModel,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", errors.Wrap(err, "openai: failed to generate chat reply")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion response")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("openai: completion returned an empty reply")
	}
	return reply, nil
}

func chatTitle(message string) string {
	title := strings.TrimSpace(message)
	runes := []rune(title)
	if len(runes) > maxTitleChars {
		title = string(runes[:maxTitleChars])
	}
	return title
}
