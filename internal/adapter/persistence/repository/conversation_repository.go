package repository

import (
	"context"
	"errors"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const ConversationsKey = "agencia_maker_conversations"

type ConversationRepository struct {
	col *jsonCollection[entities.Conversation]
}

var _ interfaces.IConversationRepository = (*ConversationRepository)(nil)

func NewConversationRepository(store interfaces.IKeyValueStore, logger *zap.Logger, now func() time.Time) *ConversationRepository {
	seedConvs := func() []entities.Conversation { return seed.Conversations(now()) }
	return &ConversationRepository{col: newJSONCollection(store, ConversationsKey, "conversations", seedConvs, logger)}
}

func (r *ConversationRepository) Initialize(ctx context.Context) error {
	return r.col.initialize(ctx)
}

func (r *ConversationRepository) List(ctx context.Context) []entities.Conversation {
	return r.col.list(ctx)
}

func (r *ConversationRepository) GetByID(ctx context.Context, id string) (entities.Conversation, bool) {
	for _, c := range r.col.list(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Conversation{}, false
}

func (r *ConversationRepository) FindOrCreate(ctx context.Context, a, b string, newConversation func() entities.Conversation) (entities.Conversation, bool, error) {
	var (
		conv    entities.Conversation
		created bool
	)
	err := r.col.mutate(ctx, func(convs []entities.Conversation) ([]entities.Conversation, error) {
		for _, c := range convs {
			if c.SamePair(a, b) {
				conv = c
				return nil, errAbort
			}
		}
		conv = newConversation()
		created = true
		return append(convs, conv), nil
	})
	if err != nil && !errors.Is(err, errAbort) {
		return entities.Conversation{}, false, err
	}
	return conv, created, nil
}

func (r *ConversationRepository) AppendMessage(ctx context.Context, conversationID string, msg entities.ChatMessage) (entities.Conversation, error) {
	var updated entities.Conversation
	err := r.col.mutate(ctx, func(convs []entities.Conversation) ([]entities.Conversation, error) {
		for i := range convs {
			if convs[i].ID == conversationID {
				convs[i].Messages = append(convs[i].Messages, msg)
				updated = convs[i]
				return convs, nil
			}
		}
		return nil, errAbort
	})
	if errors.Is(err, errAbort) {
		return entities.Conversation{}, nil
	}
	if err != nil {
		return entities.Conversation{}, err
	}
	return updated, nil
}
