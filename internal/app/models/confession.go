package models

// Confession defines an anonymous confession. No author is ever stored; anonymity
// is structural. Only approved confessions appear in public feeds.
type Confession struct {
	ID         string           `json:"id"`
	Content    string           `json:"content"`
	Category   string           `json:"category"`
	Status     ConfessionStatus `json:"status"`
	Upvotes    int              `json:"upvotes"`
	Downvotes  int              `json:"downvotes"`
	Reports    int              `json:"reports"`
	Comments   []Comment        `json:"comments"`
	CreatedAt  string           `json:"created_at"`
	ApprovedAt *string          `json:"approved_at"`
	ApprovedBy *string          `json:"approved_by"`
}

// Score returns the vote differential used for feed ordering
func (c *Confession) Score() int {
	return c.Upvotes - c.Downvotes
}

// Comment defines an anonymous comment on a confession. There is no author field.
type Comment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Report defines a content report against a confession. Resolving a report deletes
// the target confession and is irreversible.
type Report struct {
	ID           string       `json:"id"`
	ConfessionID string       `json:"confession_id"`
	ReporterID   string       `json:"reporter_id"`
	Reason       string       `json:"reason"`
	Status       ReportStatus `json:"status"`
	CreatedAt    string       `json:"created_at"`
}

// ConfessionCategories lists the accepted confession categories
var ConfessionCategories = []string{"General", "Love & Relationships", "Academic", "Social", "Funny", "Advice"}
