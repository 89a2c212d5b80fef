package handlers

import (
	"net/http"
	"testing"

	"agencia_maker/internal/adapter/http/handlers/mocks"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeSubscriber struct {
	calls int
}

func (f *fakeSubscriber) Serve(w http.ResponseWriter, _ *http.Request, _, _ string) error {
	f.calls++
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

func newChatRouter(uc usecase.IChatUseCase, hub IChatSubscriber) *gin.Engine {
	h := NewChatHandler(uc, hub, zap.NewNop())
	r := gin.New()
	r.GET("/v1/conversations", h.ListConversations)
	r.POST("/v1/conversations", h.StartConversation)
	r.GET("/v1/conversations/:id", h.GetConversation)
	r.POST("/v1/conversations/:id/messages", h.SendMessage)
	r.GET("/v1/conversations/:id/ws", h.Subscribe)
	return r
}

func TestChatHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChatUseCase(ctrl)
	summary := usecase.ConversationSummary{
		Conversation: entities.Conversation{ID: "convo-1", ParticipantIDs: [2]string{"maker-1", "maker-2"},
			Messages: []entities.ChatMessage{{ID: "msg-1", Text: "oi"}}},
		Other: entities.User{ID: "maker-2", Name: "Ana"},
	}
	uc.EXPECT().ListConversations(gomock.Any(), "maker-1").Return([]usecase.ConversationSummary{summary}, nil)
	uc.EXPECT().ListConversations(gomock.Any(), "").Return(nil, usecase.ErrInvalidUserID)
	uc.EXPECT().GetConversation(gomock.Any(), "convo-1", "maker-1").Return(summary, nil)
	uc.EXPECT().GetConversation(gomock.Any(), "convo-1", "maker-3").Return(usecase.ConversationSummary{}, usecase.ErrNotConversationParticipant)
	r := newChatRouter(uc, &fakeSubscriber{})

	if w := perform(r, http.MethodGet, "/v1/conversations?user_id=maker-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/conversations", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := perform(r, http.MethodGet, "/v1/conversations/convo-1?user_id=maker-1", "")
	body := decode(t, w)
	if msgs, ok := body["messages"].([]any); w.Code != http.StatusOK || !ok || len(msgs) != 1 {
		t.Fatalf("unexpected thread %d %s", w.Code, w.Body.String())
	}
	if w := perform(r, http.MethodGet, "/v1/conversations/convo-1?user_id=maker-3", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestChatHandler_StartConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChatUseCase(ctrl)
	uc.EXPECT().StartConversation(gomock.Any(), "client-1", "maker-1").Return(entities.Conversation{ID: "convo-9"}, true, nil)
	uc.EXPECT().StartConversation(gomock.Any(), "maker-1", "maker-2").Return(entities.Conversation{ID: "convo-1"}, false, nil)
	uc.EXPECT().StartConversation(gomock.Any(), "maker-1", "maker-1").Return(entities.Conversation{}, false, usecase.ErrSameParticipants)
	r := newChatRouter(uc, &fakeSubscriber{})

	if w := perform(r, http.MethodPost, "/v1/conversations", `{"user_id":"client-1","participant_id":"maker-1"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/v1/conversations", `{"user_id":"maker-1","participant_id":"maker-2"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/v1/conversations", `{"user_id":"maker-1","participant_id":"maker-1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatHandler_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChatUseCase(ctrl)
	uc.EXPECT().SendMessage(gomock.Any(), "convo-1", "maker-1", "olá").Return(entities.ChatMessage{ID: "msg-9", Text: "olá"}, nil)
	uc.EXPECT().SendMessage(gomock.Any(), "convo-404", "maker-1", "olá").Return(entities.ChatMessage{}, usecase.ErrConversationNotFound)
	r := newChatRouter(uc, &fakeSubscriber{})

	if w := perform(r, http.MethodPost, "/v1/conversations/convo-1/messages", `{"sender_id":"maker-1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := perform(r, http.MethodPost, "/v1/conversations/convo-1/messages", `{"sender_id":"maker-1","text":"olá"}`)
	if w.Code != http.StatusCreated || decode(t, w)["id"] != "msg-9" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w := perform(r, http.MethodPost, "/v1/conversations/convo-404/messages", `{"sender_id":"maker-1","text":"olá"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestChatHandler_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChatUseCase(ctrl)
	uc.EXPECT().GetConversation(gomock.Any(), "convo-1", "maker-9").Return(usecase.ConversationSummary{}, usecase.ErrNotConversationParticipant)
	uc.EXPECT().GetConversation(gomock.Any(), "convo-1", "maker-1").Return(usecase.ConversationSummary{}, nil)
	hub := &fakeSubscriber{}
	r := newChatRouter(uc, hub)

	if w := perform(r, http.MethodGet, "/v1/conversations/convo-1/ws?user_id=maker-9", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if hub.calls != 0 {
		t.Fatalf("hub must not be reached for non participants")
	}
	perform(r, http.MethodGet, "/v1/conversations/convo-1/ws?user_id=maker-1", "")
	if hub.calls != 1 {
		t.Fatalf("expected hub to serve the subscriber")
	}
}
