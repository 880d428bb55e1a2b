package models

// Event defines a campus event. RSVPs is a set of user ids bounded by MaxAttendees.
// ClubID is the owning club or SystemOwner for personal/system events.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	ClubID       string   `json:"club_id"`
	CreatedBy    string   `json:"created_by"`
	RSVPs        []string `json:"rsvps"`
	MaxAttendees int      `json:"max_attendees"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at"`
}

// HasRSVP reports whether the user is in the RSVP set
func (e *Event) HasRSVP(userID string) bool {
	for _, r := range e.RSVPs {
		if r == userID {
			return true
		}
	}
	return false
}
