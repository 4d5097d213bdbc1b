package dto

import "github.com/polkiloo/storemart/internal/domain/model"

// RegisterRequest describes a signup payload. Role defaults to
// customer when omitted.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest describes a credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and account summary.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserResponse maps a user onto its public view.
func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Role: string(user.Role)}
}
