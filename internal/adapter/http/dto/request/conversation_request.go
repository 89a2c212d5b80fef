package request

type StartConversationRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	ParticipantID string `json:"participant_id" binding:"required"`
}

type SendMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
}
