package entities

import "time"

type ChatMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a direct thread between exactly two users.
//
// Messages are append-only: never edited, never deleted.
type Conversation struct {
	ID             string        `json:"id"`
	ParticipantIDs [2]string     `json:"participant_ids"`
	Messages       []ChatMessage `json:"messages"`
}

func (c Conversation) Includes(userID string) bool {
	return c.ParticipantIDs[0] == userID || c.ParticipantIDs[1] == userID
}

// OtherParticipant returns the participant that is not userID, or "" when
// userID does not take part in the conversation.
func (c Conversation) OtherParticipant(userID string) string {
	switch userID {
	case c.ParticipantIDs[0]:
		return c.ParticipantIDs[1]
	case c.ParticipantIDs[1]:
		return c.ParticipantIDs[0]
	}
	return ""
}

// SamePair reports whether the conversation is between a and b, in any order.
func (c Conversation) SamePair(a, b string) bool {
	return (c.ParticipantIDs[0] == a && c.ParticipantIDs[1] == b) ||
		(c.ParticipantIDs[0] == b && c.ParticipantIDs[1] == a)
}

func (c Conversation) LastMessage() (ChatMessage, bool) {
	if len(c.Messages) == 0 {
		return ChatMessage{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
