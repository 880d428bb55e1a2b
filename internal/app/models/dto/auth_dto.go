package dto

import "github.com/emrek/campushub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Year            string   `json:"year" binding:"required"`
	Branch          string   `json:"branch" binding:"required"`
	Interests       []string `json:"interests"`
	Password        string   `json:"password" binding:"required"`
	ConfirmPassword string   `json:"confirmPassword" binding:"required"`
	PrivacyConsent  bool     `json:"privacyConsent"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// UserResponse represents user information without the credential
type UserResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Year       string   `json:"year"`
	Branch     string   `json:"branch"`
	Interests  []string `json:"interests"`
	Role       string   `json:"role"`
	IsVerified bool     `json:"isVerified"`
	JoinedDate string   `json:"joinedDate"`
	LastLogin  string   `json:"lastLogin"`
}

// NewUserResponse maps a stored user to its API shape, dropping the password
// hash.
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Year:       user.Year,
		Branch:     user.Branch,
		Interests:  user.Interests,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		JoinedDate: user.JoinedDate,
		LastLogin:  user.LastLogin,
	}
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *UserResponse `json:"user"`
}
