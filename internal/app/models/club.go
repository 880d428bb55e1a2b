package models

// Club defines a student club. Members and admins are sets of user ids; admins is
// always a subset of members. The members set never grows past MaxMembers.
type Club struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Members         []string `json:"members"`
	Admins          []string `json:"admins"`
	Tags            []string `json:"tags"`
	MeetingSchedule string   `json:"meeting_schedule"`
	Location        string   `json:"location"`
	MaxMembers      int      `json:"max_members"`
	CreatedAt       string   `json:"created_at"`
	CreatedBy       string   `json:"created_by"`
}

// HasMember reports whether the user is in the member set
func (c *Club) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// HasAdmin reports whether the user is in the admin set
func (c *Club) HasAdmin(userID string) bool {
	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}
	return false
}
