package response

import (
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"
)

type ConversationResponse struct {
	ID             string                 `json:"id"`
	ParticipantIDs [2]string              `json:"participant_ids"`
	Other          *UserResponse          `json:"other,omitempty"`
	LastMessage    *entities.ChatMessage  `json:"last_message,omitempty"`
	Messages       []entities.ChatMessage `json:"messages,omitempty"`
}

func FromConversation(c entities.Conversation) ConversationResponse {
	res := ConversationResponse{ID: c.ID, ParticipantIDs: c.ParticipantIDs, Messages: c.Messages}
	if res.Messages == nil {
		res.Messages = []entities.ChatMessage{}
	}
	if last, ok := c.LastMessage(); ok {
		res.LastMessage = &last
	}
	return res
}

// FromConversationSummary includes the full thread only when withMessages is
// set; listings carry the last message alone.
func FromConversationSummary(s usecase.ConversationSummary, withMessages bool) ConversationResponse {
	other := FromUser(s.Other)
	res := ConversationResponse{
		ID:             s.Conversation.ID,
		ParticipantIDs: s.Conversation.ParticipantIDs,
		Other:          &other,
		LastMessage:    s.LastMessage,
	}
	if withMessages {
		res.Messages = s.Conversation.Messages
		if res.Messages == nil {
			res.Messages = []entities.ChatMessage{}
		}
	}
	return res
}

func FromConversationSummaries(list []usecase.ConversationSummary) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromConversationSummary(s, false))
	}
	return out
}
