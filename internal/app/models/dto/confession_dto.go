package dto

// CreateConfessionRequest represents an anonymous confession submission
type CreateConfessionRequest struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// VoteRequest represents a vote on a confession
type VoteRequest struct {
	Direction string `json:"direction" binding:"required" example:"upvote"`
}

// ReportConfessionRequest represents a report filed against a confession
type ReportConfessionRequest struct {
	Reason string `json:"reason"`
}

// CreateCommentRequest represents an anonymous comment on a confession
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
