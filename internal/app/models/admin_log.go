package models

// AdminLogEntry is an append-only record of a privileged action. Entries are never
// mutated or deleted.
type AdminLogEntry struct {
	AdminID    string `json:"admin_id"`
	Action     string `json:"action"`
	TargetType string `json:"target_type,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	Timestamp  string `json:"timestamp"`
}
