package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// ChatService defines the interface for direct message operations
type ChatService interface {
	OpenDirect(ctx context.Context, userID, otherID string) (*models.Chat, error)
	GetChat(ctx context.Context, chatID, userID string) (*models.Chat, error)
	ListChats(ctx context.Context, userID string) ([]*models.Chat, error)
	SendMessage(ctx context.Context, chatID, senderID, content string) (*models.Message, error)
	MarkRead(ctx context.Context, chatID, userID string) (*models.Chat, error)
}

type chatServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(st store.Store, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		store:  st,
		logger: logger,
	}
}

func (s *chatServiceImpl) loadChats(ctx context.Context) (map[string]*models.Chat, error) {
	chats := make(map[string]*models.Chat)
	if err := s.store.Get(ctx, store.BucketChats, &chats); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return chats, nil
}

func (s *chatServiceImpl) saveChats(ctx context.Context, chats map[string]*models.Chat) error {
	if err := s.store.Put(ctx, store.BucketChats, chats); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// OpenDirect returns the direct chat between two users, creating it on first
// use. The chat id is derived from the sorted participant pair, so both sides
// always land in the same conversation.
func (s *chatServiceImpl) OpenDirect(ctx context.Context, userID, otherID string) (*models.Chat, error) {
	if otherID == "" || otherID == userID {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingField, "please provide another user to chat with")
	}

	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	chatID := models.DirectChatID(userID, otherID)
	if chat, ok := chats[chatID]; ok {
		return chat, nil
	}

	now := helpers.NowISO()
	chat := &models.Chat{
		ID:           chatID,
		Participants: []string{userID, otherID},
		Type:         models.ChatDirect,
		CreatedAt:    now,
		LastActivity: now,
		Messages:     []models.Message{},
	}

	chats[chatID] = chat
	if err := s.saveChats(ctx, chats); err != nil {
		return nil, err
	}

	s.logger.Info().Str("chatID", chatID).Msg("Direct chat opened")
	return chat, nil
}

// GetChat retrieves a chat. Only participants may read it.
func (s *chatServiceImpl) GetChat(ctx context.Context, chatID, userID string) (*models.Chat, error) {
	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	chat, ok := chats[chatID]
	if !ok {
		return nil, apperrors.NewNotFoundError("chat not found")
	}
	if !chat.HasParticipant(userID) {
		return nil, apperrors.NewUnauthorizedError("not a participant in this chat")
	}
	return chat, nil
}

// ListChats returns the user's chats, most recently active first
func (s *chatServiceImpl) ListChats(ctx context.Context, userID string) ([]*models.Chat, error) {
	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.Chat
	for _, chat := range chats {
		if chat.HasParticipant(userID) {
			result = append(result, chat)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastActivity > result[j].LastActivity
	})
	return result, nil
}

// SendMessage appends a message and bumps the chat's last activity. Only
// participants may send.
func (s *chatServiceImpl) SendMessage(ctx context.Context, chatID, senderID, content string) (*models.Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, apperrors.NewMissingFieldError("a message")
	}

	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	chat, ok := chats[chatID]
	if !ok {
		return nil, apperrors.NewNotFoundError("chat not found")
	}
	if !chat.HasParticipant(senderID) {
		return nil, apperrors.NewUnauthorizedError("not a participant in this chat")
	}

	message := models.Message{
		ID:        uuid.New().String(),
		Sender:    senderID,
		Content:   trimmed,
		Timestamp: helpers.NowISO(),
	}
	chat.Messages = append(chat.Messages, message)
	chat.LastActivity = message.Timestamp

	if err := s.saveChats(ctx, chats); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("chatID", chatID).Str("senderID", senderID).Msg("Message sent")
	return &message, nil
}

// MarkRead marks every message from the other side as read
func (s *chatServiceImpl) MarkRead(ctx context.Context, chatID, userID string) (*models.Chat, error) {
	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	chat, ok := chats[chatID]
	if !ok {
		return nil, apperrors.NewNotFoundError("chat not found")
	}
	if !chat.HasParticipant(userID) {
		return nil, apperrors.NewUnauthorizedError("not a participant in this chat")
	}

	changed := false
	for i := range chat.Messages {
		if chat.Messages[i].Sender != userID && !chat.Messages[i].Read {
			chat.Messages[i].Read = true
			changed = true
		}
	}

	if changed {
		if err := s.saveChats(ctx, chats); err != nil {
			return nil, err
		}
	}
	return chat, nil
}
