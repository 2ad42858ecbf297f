package model

import "time"

const (
	UserTypeClient = "client"
	UserTypeAdmin  = "admin"
	UserTypeVendor = "vendor"
	UserTypeDriver = "driver"
)

type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      []string  `json:"address"`
	Phone        string    `json:"phone"`
	UserType     string    `json:"usertype"` // "client", "admin", "vendor", "driver"
	Profile      string    `json:"profile"`
	AnswerHash   string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}

type RegisterRequest struct {
	UserName string   `json:"userName" validate:"required,min=2,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Address  []string `json:"address"`
	Phone    string   `json:"phone" validate:"required"`
	Answer   string   `json:"answer" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
	Answer      string `json:"answer" validate:"required"`
}

type UpdateProfileRequest struct {
	UserName string   `json:"userName" validate:"omitempty,min=2,max=100"`
	Address  []string `json:"address"`
	Phone    string   `json:"phone"`
	Profile  string   `json:"profile" validate:"omitempty,url"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
