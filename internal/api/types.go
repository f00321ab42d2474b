package api

import "github.com/wolfread/wolfread-go/internal/models"

const statusSuccess = "success"

// RegisterRequest carries the fields for account creation.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// ProfileUpdate carries the mutable profile fields for PUT /auth/profile/.
type ProfileUpdate struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ChangePasswordRequest carries the payload for POST /auth/change-password/.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// AuthResult is what login and registration hand back to callers.
type AuthResult struct {
	User   *models.User
	Tokens *models.TokenPair
}

// StatusResult is the outcome of a status check.
type StatusResult struct {
	Authenticated bool
	User          *models.User
}

// Wire DTOs. Response shapes are narrowed here, at the boundary, instead of
// trusting field presence downstream.

type authResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	User    *models.User      `json:"user"`
	Tokens  *models.TokenPair `json:"tokens"`
}

type statusResponse struct {
	Status        string       `json:"status"`
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type profileResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type preferencesResponse struct {
	Status         string `json:"status"`
	ShouldShowForm bool   `json:"should_show_form"`
}
