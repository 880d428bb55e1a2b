package models

// Announcement defines a campus announcement. Announcements are never mutated
// after creation.
type Announcement struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Author    string               `json:"author"`
	AuthorID  string               `json:"author_id"`
	Type      AnnouncementType     `json:"type"`
	Priority  AnnouncementPriority `json:"priority"`
	Timestamp string               `json:"timestamp"`
}
