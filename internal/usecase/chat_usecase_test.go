package usecase

import (
	"context"
	"testing"
	"time"

	"agencia_maker/internal/adapter/persistence/kvstore"
	"agencia_maker/internal/adapter/persistence/repository"
	"agencia_maker/internal/domain/entities"
	mock_interfaces "agencia_maker/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newChatFixture(t *testing.T) (*ChatUseCase, *repository.Repositories, *mock_interfaces.MockIChatBroadcaster) {
	t.Helper()
	repos := repository.NewRepositories(kvstore.NewMemoryStore(), zap.NewNop(), nil)
	require.NoError(t, repos.Initialize(context.Background()))
	ctrl := gomock.NewController(t)
	b := mock_interfaces.NewMockIChatBroadcaster(ctrl)
	return NewChatUseCase(repos.Conversations, repos.Users, b, zap.NewNop()), repos, b
}

func TestChatUseCase_ListConversations(t *testing.T) {
	uc, repos, _ := newChatFixture(t)
	ctx := context.Background()

	list, err := uc.ListConversations(ctx, "maker-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "convo-1", list[0].Conversation.ID)
	assert.Equal(t, "Ana Pereira", list[0].Other.Name)
	require.NotNil(t, list[0].LastMessage)
	assert.Equal(t, "msg-3", list[0].LastMessage.ID)

	_, _, err = repos.Conversations.FindOrCreate(ctx, "maker-2", "ghost", func() entities.Conversation {
		return entities.Conversation{ID: "convo-ghost", ParticipantIDs: [2]string{"maker-2", "ghost"}}
	})
	require.NoError(t, err)
	list, err = uc.ListConversations(ctx, "maker-2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "convo-1", list[0].Conversation.ID)

	list, err = uc.ListConversations(ctx, "client-1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = uc.ListConversations(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestChatUseCase_GetConversation(t *testing.T) {
	uc, _, _ := newChatFixture(t)
	ctx := context.Background()

	s, err := uc.GetConversation(ctx, "convo-2", "maker-3")
	require.NoError(t, err)
	assert.Equal(t, "maker-1", s.Other.ID)

	_, err = uc.GetConversation(ctx, "convo-2", "maker-2")
	assert.ErrorIs(t, err, ErrNotConversationParticipant)

	_, err = uc.GetConversation(ctx, "convo-9", "maker-2")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestChatUseCase_StartConversation(t *testing.T) {
	uc, _, _ := newChatFixture(t)
	ctx := context.Background()

	conv, created, err := uc.StartConversation(ctx, "maker-2", "maker-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "convo-1", conv.ID)

	conv, created, err = uc.StartConversation(ctx, "client-1", "maker-3")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, conv.Messages)

	again, created, err := uc.StartConversation(ctx, "maker-3", "client-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv.ID, again.ID)

	_, _, err = uc.StartConversation(ctx, "maker-1", "maker-1")
	assert.ErrorIs(t, err, ErrSameParticipants)

	_, _, err = uc.StartConversation(ctx, "maker-1", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChatUseCase_SendMessage(t *testing.T) {
	uc, repos, b := newChatFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	b.EXPECT().Broadcast("convo-1", gomock.Any()).Times(1)
	msg, err := uc.SendMessage(ctx, "convo-1", "maker-1", "  Uso o PETG da Voolt.  ")
	require.NoError(t, err)
	assert.Equal(t, "Uso o PETG da Voolt.", msg.Text)
	assert.Equal(t, now, msg.Timestamp)

	conv, ok := repos.Conversations.GetByID(ctx, "convo-1")
	require.True(t, ok)
	last, _ := conv.LastMessage()
	assert.Equal(t, msg.ID, last.ID)
	assert.Len(t, conv.Messages, 4)

	_, err = uc.SendMessage(ctx, "convo-1", "maker-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = uc.SendMessage(ctx, "convo-1", "maker-3", "oi")
	assert.ErrorIs(t, err, ErrNotConversationParticipant)

	_, err = uc.SendMessage(ctx, "convo-x", "maker-3", "oi")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
