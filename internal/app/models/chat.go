package models

import "sort"

// Chat defines a conversation. For direct chats the id is a deterministic function
// of the sorted participant pair, so at most one direct chat exists per pair.
type Chat struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	Type         ChatType  `json:"type"`
	CreatedAt    string    `json:"created_at"`
	LastActivity string    `json:"last_activity"`
	Messages     []Message `json:"messages"`
}

// HasParticipant reports whether the user belongs to the chat
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Message defines a single chat message
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// DirectChatID derives the canonical id for a direct chat between two users.
// The pair is sorted so both orderings resolve to the same chat.
func DirectChatID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return "dm_" + pair[0] + "_" + pair[1]
}
