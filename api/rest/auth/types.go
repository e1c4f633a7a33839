package auth

import "codeberg.org/creatorkit/server/creatorkit/profiles"

// AuthResponse returned after successful OAuth callback
type AuthResponse struct {
	Profile *profiles.Profile `json:"profile"`
	Token   string            `json:"token"`
}

// ProfileResponse wraps profile data
type ProfileResponse struct {
	Profile *profiles.Profile `json:"profile"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// PostSignupRequest provisions a profile for an externally created account
type PostSignupRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Email  string `json:"email" binding:"required,email"`
}
