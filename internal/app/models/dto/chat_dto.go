package dto

// OpenChatRequest represents a request to open a direct chat with another user
type OpenChatRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// SendMessageRequest represents a message submission
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
