package models

// User defines a registered campus account. The password field holds the bcrypt
// hash, never the raw credential; API responses must go through dto.UserResponse
// which drops it.
type User struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Year       string   `json:"year"`
	Branch     string   `json:"branch"`
	Interests  []string `json:"interests"`
	Password   string   `json:"password"`
	Role       RoleType `json:"role"`
	IsVerified bool     `json:"is_verified"`
	JoinedDate string   `json:"joined_date"`
	LastLogin  string   `json:"last_login"`
}

// AcademicYears lists the accepted academic-year values at registration
var AcademicYears = []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"}
