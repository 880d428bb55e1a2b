package dto

// CreateClubRequest represents a new club submission
type CreateClubRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Tags            []string `json:"tags"`
	MeetingSchedule string   `json:"meetingSchedule"`
	Location        string   `json:"location"`
	MaxMembers      int      `json:"maxMembers"`
}

// CreateEventRequest represents a new event submission
type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Date         string   `json:"date" binding:"required" example:"2026-09-12T18:00:00Z"`
	Location     string   `json:"location"`
	ClubID       string   `json:"clubId"`
	MaxAttendees int      `json:"maxAttendees"`
	Tags         []string `json:"tags"`
}

// CreateAnnouncementRequest represents a new announcement submission
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type" example:"college"`
	Priority string `json:"priority" example:"medium"`
}
