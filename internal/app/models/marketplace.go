package models

// Listing defines a marketplace listing
type Listing struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	Category      string        `json:"category"`
	Condition     string        `json:"condition"`
	ContactMethod string        `json:"contact_method"`
	ContactInfo   string        `json:"contact_info"`
	Location      string        `json:"location"`
	SellerID      string        `json:"seller_id"`
	SellerName    string        `json:"seller_name"`
	Status        ListingStatus `json:"status"`
	CreatedAt     string        `json:"created_at"`
	Views         int           `json:"views"`
}

// ListingCategories lists the accepted marketplace categories
var ListingCategories = []string{"Books", "Electronics", "Furniture", "Clothing", "Other"}

// ListingConditions lists the accepted item conditions
var ListingConditions = []string{"New", "Like New", "Good", "Fair", "Poor"}
