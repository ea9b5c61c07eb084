package model

type Company struct {
	DTO
	Name   string `json:"name"`
	Slug   string `gorm:"unique;size:80" json:"slug"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`
}

type CreateCompanyInput struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type UpdateCompanyInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}
