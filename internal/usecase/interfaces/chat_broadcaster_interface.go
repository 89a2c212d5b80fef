package interfaces

import "agencia_maker/internal/domain/entities"

// IChatBroadcaster pushes new messages to live subscribers of a conversation.
// Delivery is best effort; Broadcast must not block on slow subscribers.
type IChatBroadcaster interface {
	Broadcast(conversationID string, msg entities.ChatMessage)
}
