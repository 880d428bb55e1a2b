package dto

// CreateListingRequest represents a new marketplace listing submission
type CreateListingRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Condition     string  `json:"condition"`
	ContactMethod string  `json:"contactMethod"`
	ContactInfo   string  `json:"contactInfo"`
	Location      string  `json:"location"`
}
