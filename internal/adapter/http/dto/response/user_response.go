package response

import (
	"time"
	"todotech_backend/internal/domain/entities"
)

type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Username   string    `json:"username"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	Active     bool      `json:"active"`
}

// FromUser never carries the password.
func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		NationalID: u.NationalID,
		Email:      u.Email,
		Phone:      u.Phone,
		Username:   u.Username,
		Type:       string(u.Type),
		CreatedAt:  u.CreatedAt,
		Active:     u.Active,
	}
}
