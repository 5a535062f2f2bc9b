package dto

import "github.com/mrmarton/REST-API/internal/app/models"

// CreateUserRequest represents the payload for user registration
type CreateUserRequest struct {
	FirstName    string `json:"firstName" example:"Joe"`
	LastName     string `json:"lastName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"joe@smith.com"`
	Password     string `json:"password" example:"joepassword"`
}

// UserResponse is the public view of a user. The password hash and
// timestamps are never serialized.
type UserResponse struct {
	ID           int64  `json:"id" example:"1"`
	FirstName    string `json:"firstName" example:"Joe"`
	LastName     string `json:"lastName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"joe@smith.com"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}
