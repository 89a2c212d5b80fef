package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrConversationNotFound       = errors.New("conversation not found")
	ErrInvalidConversationID      = errors.New("invalid conversation id")
	ErrEmptyMessage               = errors.New("message text is required")
	ErrNotConversationParticipant = errors.New("user is not a participant of the conversation")
	ErrSameParticipants           = errors.New("a conversation needs two distinct users")
)

// ConversationSummary is a conversation seen from one participant.
type ConversationSummary struct {
	Conversation entities.Conversation
	Other        entities.User
	LastMessage  *entities.ChatMessage
}

type IChatUseCase interface {
	ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error)
	GetConversation(ctx context.Context, conversationID, userID string) (ConversationSummary, error)
	StartConversation(ctx context.Context, a, b string) (entities.Conversation, bool, error)
	SendMessage(ctx context.Context, conversationID, senderID, text string) (entities.ChatMessage, error)
}

type ChatUseCase struct {
	conversations interfaces.IConversationRepository
	users         interfaces.IUserRepository
	broadcaster   interfaces.IChatBroadcaster
	logger        *zap.Logger
	now           func() time.Time
}

var _ IChatUseCase = (*ChatUseCase)(nil)

// NewChatUseCase accepts a nil broadcaster when live push is disabled.
func NewChatUseCase(conversations interfaces.IConversationRepository, users interfaces.IUserRepository, broadcaster interfaces.IChatBroadcaster, logger *zap.Logger) *ChatUseCase {
	return &ChatUseCase{conversations: conversations, users: users, broadcaster: broadcaster, logger: logger, now: time.Now}
}

// ListConversations returns the user's conversations, most recent activity
// first. Conversations whose other participant is unknown are skipped.
func (u *ChatUseCase) ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	out := make([]ConversationSummary, 0)
	for _, c := range u.conversations.List(ctx) {
		if !c.Includes(userID) {
			continue
		}
		summary, ok := u.summarize(ctx, c, userID)
		if !ok {
			u.logger.Warn("[chat][usecase] skipping conversation with unknown participant",
				zap.String("conversation_id", c.ID), zap.String("user_id", userID))
			continue
		}
		out = append(out, summary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out, nil
}

func (u *ChatUseCase) GetConversation(ctx context.Context, conversationID, userID string) (ConversationSummary, error) {
	conversationID = strings.TrimSpace(conversationID)
	userID = strings.TrimSpace(userID)
	if conversationID == "" {
		return ConversationSummary{}, ErrInvalidConversationID
	}
	if userID == "" {
		return ConversationSummary{}, ErrInvalidUserID
	}
	c, ok := u.conversations.GetByID(ctx, conversationID)
	if !ok {
		return ConversationSummary{}, ErrConversationNotFound
	}
	if !c.Includes(userID) {
		return ConversationSummary{}, ErrNotConversationParticipant
	}
	summary, ok := u.summarize(ctx, c, userID)
	if !ok {
		return ConversationSummary{}, ErrUserNotFound
	}
	return summary, nil
}

// StartConversation returns the conversation for the unordered pair, creating
// it when needed. created reports whether a new one was stored.
func (u *ChatUseCase) StartConversation(ctx context.Context, a, b string) (entities.Conversation, bool, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return entities.Conversation{}, false, ErrInvalidUserID
	}
	if a == b {
		return entities.Conversation{}, false, ErrSameParticipants
	}
	for _, id := range []string{a, b} {
		if _, ok := u.users.GetByID(ctx, id); !ok {
			return entities.Conversation{}, false, ErrUserNotFound
		}
	}

	conv, created, err := u.conversations.FindOrCreate(ctx, a, b, func() entities.Conversation {
		return entities.Conversation{
			ID:             "convo-" + uuid.NewString(),
			ParticipantIDs: [2]string{a, b},
			Messages:       []entities.ChatMessage{},
		}
	})
	if err != nil {
		return entities.Conversation{}, false, err
	}
	if created {
		u.logger.Info("[chat][usecase] conversation started", zap.String("conversation_id", conv.ID))
	}
	return conv, created, nil
}

func (u *ChatUseCase) SendMessage(ctx context.Context, conversationID, senderID, text string) (entities.ChatMessage, error) {
	conversationID = strings.TrimSpace(conversationID)
	senderID = strings.TrimSpace(senderID)
	text = strings.TrimSpace(text)
	if conversationID == "" {
		return entities.ChatMessage{}, ErrInvalidConversationID
	}
	if senderID == "" {
		return entities.ChatMessage{}, ErrInvalidUserID
	}
	if text == "" {
		return entities.ChatMessage{}, ErrEmptyMessage
	}
	c, ok := u.conversations.GetByID(ctx, conversationID)
	if !ok {
		return entities.ChatMessage{}, ErrConversationNotFound
	}
	if !c.Includes(senderID) {
		return entities.ChatMessage{}, ErrNotConversationParticipant
	}

	msg := entities.ChatMessage{
		ID:        "msg-" + uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: u.now().UTC(),
	}
	updated, err := u.conversations.AppendMessage(ctx, conversationID, msg)
	if err != nil {
		u.logger.Error("[chat][usecase] append message failed", zap.String("conversation_id", conversationID), zap.Error(err))
		return entities.ChatMessage{}, err
	}
	if updated.ID == "" {
		return entities.ChatMessage{}, ErrConversationNotFound
	}
	if u.broadcaster != nil {
		u.broadcaster.Broadcast(conversationID, msg)
	}
	return msg, nil
}

func (u *ChatUseCase) summarize(ctx context.Context, c entities.Conversation, userID string) (ConversationSummary, bool) {
	other, ok := u.users.GetByID(ctx, c.OtherParticipant(userID))
	if !ok {
		return ConversationSummary{}, false
	}
	s := ConversationSummary{Conversation: c, Other: other}
	if last, ok := c.LastMessage(); ok {
		s.LastMessage = &last
	}
	return s, true
}

func lastActivity(s ConversationSummary) time.Time {
	if s.LastMessage == nil {
		return time.Time{}
	}
	return s.LastMessage.Timestamp
}
