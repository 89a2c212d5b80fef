package handlers

import (
	"errors"
	"net/http"

	request "agencia_maker/internal/adapter/http/dto/request"
	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)

// IChatSubscriber upgrades a request into a live conversation feed.
type IChatSubscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, conversationID, userID string) error
}

type ChatHandler struct {
	usecase usecase.IChatUseCase
	hub     IChatSubscriber
	logger  *zap.Logger
}

func NewChatHandler(uc usecase.IChatUseCase, hub IChatSubscriber, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{usecase: uc, hub: hub, logger: logger}
}

// ListConversations godoc
// @Summary  Conversations of a user
// @Tags     conversations
// @Produce  json
// @Param    user_id query string true "User ID"
// @Success  200 {array} response.ConversationResponse
// @Router   /conversations [get]
func (h *ChatHandler) ListConversations(c *gin.Context) {
	list, err := h.usecase.ListConversations(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversationSummaries(list))
}

// StartConversation godoc
// @Summary  Open (or reuse) a conversation between two users
// @Tags     conversations
// @Accept   json
// @Produce  json
// @Param    body body request.StartConversationRequest true "Participants"
// @Success  200 {object} response.ConversationResponse
// @Success  201 {object} response.ConversationResponse
// @Router   /conversations [post]
func (h *ChatHandler) StartConversation(c *gin.Context) {
	var payload request.StartConversationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidChatPayload)
		return
	}
	conv, created, err := h.usecase.StartConversation(c.Request.Context(), payload.UserID, payload.ParticipantID)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromConversation(conv))
}

// GetConversation godoc
// @Summary  Full thread of a conversation
// @Tags     conversations
// @Produce  json
// @Param    id      path  string true "Conversation ID"
// @Param    user_id query string true "Requesting participant"
// @Success  200 {object} response.ConversationResponse
// @Failure  403 {object} pkg.HTTPError
// @Router   /conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	summary, err := h.usecase.GetConversation(c.Request.Context(), c.Param("id"), c.Query("user_id"))
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversationSummary(summary, true))
}

// SendMessage godoc
// @Summary  Append a message
// @Tags     conversations
// @Accept   json
// @Produce  json
// @Param    id   path string                     true "Conversation ID"
// @Param    body body request.SendMessageRequest true "Message"
// @Success  201 {object} entities.ChatMessage
// @Router   /conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidChatPayload)
		return
	}
	msg, err := h.usecase.SendMessage(c.Request.Context(), c.Param("id"), payload.SenderID, payload.Text)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Subscribe godoc
// @Summary  Websocket feed of new messages
// @Tags     conversations
// @Param    id      path  string true "Conversation ID"
// @Param    user_id query string true "Subscribing participant"
// @Success  101
// @Router   /conversations/{id}/ws [get]
func (h *ChatHandler) Subscribe(c *gin.Context) {
	id, userID := c.Param("id"), c.Query("user_id")
	if _, err := h.usecase.GetConversation(c.Request.Context(), id, userID); err != nil {
		writeError(c, mapChatError(err))
		return
	}
	if err := h.hub.Serve(c.Writer, c.Request, id, userID); err != nil {
		h.logger.Warn("[chat][handler] websocket upgrade failed", zap.String("conversation_id", id), zap.Error(err))
	}
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidConversationID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrSameParticipants):
		return pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotConversationParticipant):
		return pkg.NewDomainErrorSimple("NOT_A_PARTICIPANT", "User is not a participant of this conversation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConversationNotFound):
		return pkg.NewDomainErrorSimple("CONVERSATION_NOT_FOUND", "Conversation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
