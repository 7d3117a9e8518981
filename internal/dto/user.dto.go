package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserDTO struct {
	ID           uint      `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	LoginMethod  string    `json:"login_method"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

func NewUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		LastSignedIn: u.LastSignedIn,
	}
}

type SessionDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
