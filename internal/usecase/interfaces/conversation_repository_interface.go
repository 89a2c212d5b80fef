package interfaces

import (
	"context"

	"agencia_maker/internal/domain/entities"
)

type IConversationRepository interface {
	List(ctx context.Context) []entities.Conversation
	GetByID(ctx context.Context, id string) (entities.Conversation, bool)
	// FindOrCreate returns the conversation between a and b (any order),
	// creating it with newConversation when absent. created reports which.
	FindOrCreate(ctx context.Context, a, b string, newConversation func() entities.Conversation) (conv entities.Conversation, created bool, err error)
	// AppendMessage appends msg atomically. A zero Conversation is returned
	// when conversationID is unknown.
	AppendMessage(ctx context.Context, conversationID string, msg entities.ChatMessage) (entities.Conversation, error)
}
