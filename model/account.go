package model

import "time"

type Account struct {
	DTO
	Username  string   `gorm:"unique;size:60" json:"username"`
	Password  string   `json:"-"`
	Role      string   `json:"role"` // ADMIN, OPERATOR
	CompanyID *uint    `json:"companyId"`
	Company   *Company `json:"company,omitempty"`
	Email     string   `json:"email"`
	Active    bool     `gorm:"default:true" json:"active"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `json:"accountId"`
	Token     string    `gorm:"unique;size:64" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateAccountInput struct {
	Username  string `json:"username" validate:"required,min=3,max=60"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	Email     string `json:"email" validate:"omitempty,email"`
	CompanyID *uint  `json:"companyId"`
}
