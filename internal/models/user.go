package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	OpenID string `gorm:"size:64;uniqueIndex;not null" json:"open_id"`

	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:320;index" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`
	LoginMethod  string `gorm:"size:64" json:"login_method"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'user';not null" json:"role"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
